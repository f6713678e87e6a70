package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name         string
		cost         int
		password     string
		expectedCost int
		expectedErr  error
	}{
		{
			name:         "Explicit cost",
			cost:         bcrypt.MinCost,
			password:     "s3cret-pass",
			expectedCost: bcrypt.MinCost,
		},
		{
			name:         "Zero cost falls back to default",
			cost:         0,
			password:     "s3cret-pass",
			expectedCost: bcrypt.DefaultCost,
		},
		{
			name:        "Empty password",
			cost:        bcrypt.MinCost,
			password:    "",
			expectedErr: ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := NewHashService(tt.cost).HashPassword(tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hashed)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hashed)

			cost, err := bcrypt.Cost([]byte(hashed))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCost, cost)
		})
	}
}

func TestHashPasswordSalts(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)

	first, err := hashService.HashPassword("s3cret-pass")
	require.NoError(t, err)
	second, err := hashService.HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hashService.ComparePassword(first, "s3cret-pass"))
	assert.True(t, hashService.ComparePassword(second, "s3cret-pass"))
}

func TestComparePassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)
	hashed, err := hashService.HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, hashService.ComparePassword(hashed, "s3cret-pass"))
	assert.False(t, hashService.ComparePassword(hashed, "wrong-pass"))
	assert.False(t, hashService.ComparePassword("not-a-hash", "s3cret-pass"))
}
