package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mt2web/mt2web/internal/domain"
)

// MobCatalog is the read side of the mob catalog
type MobCatalog interface {
	Get(id string) (domain.Mob, error)
	List() []domain.Mob
}

type MobHandler struct {
	catalog MobCatalog
}

func NewMobHandler(catalog MobCatalog) *MobHandler {
	return &MobHandler{catalog: catalog}
}

// HandleList returns every mob ordered by level
// @Summary List mobs
// @Tags mobs
// @Produce json
// @Success 200 {array} domain.Mob
// @Router /api/v1/mobs [get]
func (h *MobHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.List())
}

// HandleGet returns one mob
// @Summary Get mob
// @Tags mobs
// @Produce json
// @Param id path string true "Mob ID"
// @Success 200 {object} domain.Mob
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/mobs/{id} [get]
func (h *MobHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	m, err := h.catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, ErrMsgGetMobFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}
