package pg

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_OutsideTransaction(t *testing.T) {
	_, db, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM orders WHERE id = $1`)).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow("pending"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM orders WHERE buyer_id = $1`)).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7).AddRow(8))

	var status string
	require.NoError(t, db.QueryRow(context.Background(), `SELECT status FROM orders WHERE id = $1`, 7).Scan(&status))
	assert.Equal(t, "pending", status)

	rows, err := db.Query(context.Background(), `SELECT id FROM orders WHERE buyer_id = $1`, 3)
	require.NoError(t, err)
	var ids []int
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	rows.Close()

	assert.Equal(t, []int{7, 8}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
