package handlers

//go:generate mockgen -source=cat_create.go -destination=cat_create_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/neko-list/internal/middlewares"
	"github.com/sbilibin2017/neko-list/internal/models"
)

// CatCreator defines the interface for creating cats.
type CatCreator interface {
	Create(ctx context.Context, caller *models.UserDB, in models.CatInput) (*models.CatDB, error)
}

// NewCreateCatHandler returns an HTTP handler registering a cat for the caller.
// @Summary Create cat
// @Description Creates a cat owned by the caller
// @Tags cats
// @Accept json
// @Produce json
// @Param X-User-Id header int false "Caller user id"
// @Param cat body models.CatInput true "Cat"
// @Success 201 {object} models.CatDB
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /cats [post]
func NewCreateCatHandler(svc CatCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middlewares.GetUserFromContext(r.Context())
		if caller == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		var in models.CatInput
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		cat, err := svc.Create(r.Context(), caller, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, cat)
	}
}
