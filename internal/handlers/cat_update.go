package handlers

//go:generate mockgen -source=cat_update.go -destination=cat_update_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/neko-list/internal/middlewares"
	"github.com/sbilibin2017/neko-list/internal/models"
)

// CatUpdater defines the interface for partial cat updates.
type CatUpdater interface {
	Update(ctx context.Context, caller *models.UserDB, id int64, patch models.CatPatch) (*models.CatDB, error)
}

// NewUpdateCatHandler returns an HTTP handler applying a partial update.
// Only fields present in the body change; null clears a field.
// @Summary Update cat
// @Description Partially updates a cat owned by the caller
// @Tags cats
// @Accept json
// @Produce json
// @Param X-User-Id header int false "Caller user id"
// @Param id path int true "Cat ID"
// @Param cat body models.CatPatch true "Fields to change"
// @Success 200 {object} models.CatDB
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 403 {object} models.ErrorResponse "Not the owner"
// @Failure 404 {object} models.ErrorResponse "Cat not found"
// @Security BearerAuth
// @Router /cats/{id} [put]
func NewUpdateCatHandler(svc CatUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middlewares.GetUserFromContext(r.Context())
		if caller == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid cat id")
			return
		}

		var patch models.CatPatch
		if err := decodeJSON(w, r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		cat, err := svc.Update(r.Context(), caller, id, patch)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, cat)
	}
}
