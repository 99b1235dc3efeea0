package handlers

//go:generate mockgen -source=cat_delete.go -destination=cat_delete_mock.go -package=handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/neko-list/internal/middlewares"
	"github.com/sbilibin2017/neko-list/internal/models"
)

// CatDeleter defines the interface for deleting cats.
type CatDeleter interface {
	Delete(ctx context.Context, caller *models.UserDB, id int64) (*models.CatDB, error)
}

// NewDeleteCatHandler returns an HTTP handler deleting a cat owned by the caller.
// @Summary Delete cat
// @Description Deletes a cat owned by the caller
// @Tags cats
// @Produce json
// @Param X-User-Id header int false "Caller user id"
// @Param id path int true "Cat ID"
// @Success 200 {object} models.CatDeleteResponse
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 403 {object} models.ErrorResponse "Not the owner"
// @Failure 404 {object} models.ErrorResponse "Cat not found"
// @Security BearerAuth
// @Router /cats/{id} [delete]
func NewDeleteCatHandler(svc CatDeleter) http.HandlerFunc {
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

		cat, err := svc.Delete(r.Context(), caller, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.CatDeleteResponse{
			Message: fmt.Sprintf("Cat '%s' has been deleted", cat.Name),
		})
	}
}
