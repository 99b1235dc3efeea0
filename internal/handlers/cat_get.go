package handlers

//go:generate mockgen -source=cat_get.go -destination=cat_get_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/neko-list/internal/models"
)

// CatGetter defines the interface for reading a single cat.
type CatGetter interface {
	GetByID(ctx context.Context, id int64) (*models.CatDB, error)
}

// NewGetCatHandler returns an HTTP handler for a single cat.
// @Summary Get cat
// @Description Returns a cat with its owner
// @Tags cats
// @Produce json
// @Param id path int true "Cat ID"
// @Success 200 {object} models.CatDB
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 404 {object} models.ErrorResponse "Cat not found"
// @Router /cats/{id} [get]
func NewGetCatHandler(svc CatGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid cat id")
			return
		}

		cat, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, cat)
	}
}
