package handlers

//go:generate mockgen -source=cat_list.go -destination=cat_list_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/neko-list/internal/models"
)

// CatLister defines the interface for listing cats.
type CatLister interface {
	List(ctx context.Context) ([]models.CatDB, error)
}

// NewListCatsHandler returns an HTTP handler listing every cat.
// @Summary List cats
// @Description Returns all cats with their owners, newest first
// @Tags cats
// @Produce json
// @Success 200 {array} models.CatDB
// @Router /cats [get]
func NewListCatsHandler(svc CatLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if cats == nil {
			cats = []models.CatDB{}
		}

		writeJSON(w, http.StatusOK, cats)
	}
}
