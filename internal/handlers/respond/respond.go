package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/auth"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	CodeValidation        = "validation_error"
	CodeInvalidTransition = "invalid_transition"
	CodeConflict          = "conflict"
	CodeForbidden         = "forbidden"
	CodeNotFound          = "not_found"
	CodeInternal          = "internal_error"
)

var kinds = []struct {
	kind   error
	status int
	code   string
}{
	{domain.ErrValidation, http.StatusBadRequest, CodeValidation},
	{domain.ErrInvalidTransition, http.StatusBadRequest, CodeInvalidTransition},
	{domain.ErrConflict, http.StatusBadRequest, CodeConflict},
	{domain.ErrForbidden, http.StatusForbidden, CodeForbidden},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound},
}

// Error translates a service error into its HTTP reply. Unknown errors
// are logged and hidden behind a 500.
func Error(w http.ResponseWriter, err error) {
	for _, k := range kinds {
		if errors.Is(err, k.kind) {
			msg := strings.TrimPrefix(err.Error(), k.kind.Error()+": ")
			utils.RespondWithCode(w, k.status, k.code, msg)
			return
		}
	}
	zap.L().Error("request failed", zap.Error(err))
	utils.RespondWithCode(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
}

// Decode reads a JSON body into v and answers 400 itself when it can't.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.RespondWithCode(w, http.StatusBadRequest, CodeValidation, "Invalid request body")
		return false
	}
	return true
}

// PathID parses a positive integer URL parameter and answers 400 itself
// when it is malformed.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		utils.RespondWithCode(w, http.StatusBadRequest, CodeValidation, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// Principal maps verified token claims onto the caller identity services use.
func Principal(c *auth.Claims) domain.Principal {
	return domain.Principal{UserID: c.UserID, Role: c.Role}
}

// WithCaller stores p in ctx the way the auth middleware does.
func WithCaller(ctx context.Context, p domain.Principal) context.Context {
	return auth.WithClaims(ctx, &auth.Claims{UserID: p.UserID, Role: p.Role})
}

// Caller returns the authenticated principal or answers 401.
func Caller(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return domain.Principal{}, false
	}
	return Principal(claims), true
}
