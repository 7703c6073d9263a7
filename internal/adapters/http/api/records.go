package api

import (
	"net/http"

	"github.com/okian/alpe/internal/domain/types"
)

// RecordsHandler lists the plotted records.
type RecordsHandler struct {
	deps Dependencies
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(deps Dependencies) *RecordsHandler {
	return &RecordsHandler{deps: deps}
}

// HandleGetRecords handles GET /api/records requests.
func (h *RecordsHandler) HandleGetRecords(w http.ResponseWriter, r *http.Request) {
	ds, err := h.deps.Dataset(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	scene, err := h.deps.Scene(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewRecordsResponse(ds, scene))
}
