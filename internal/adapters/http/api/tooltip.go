package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/okian/alpe/internal/domain/chart"
	"github.com/okian/alpe/internal/domain/types"
)

// TooltipHandler answers hover lookups.
type TooltipHandler struct {
	deps Dependencies
}

// NewTooltipHandler creates a new tooltip handler.
func NewTooltipHandler(deps Dependencies) *TooltipHandler {
	return &TooltipHandler{deps: deps}
}

// HandleGetTooltip handles GET /api/tooltip?index=&x=&y= requests.
func (h *TooltipHandler) HandleGetTooltip(w http.ResponseWriter, r *http.Request) {
	index, at, err := parseTooltipQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	t, err := h.deps.Tooltip(r.Context(), index, at)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewTooltipView(t))
}

func parseTooltipQuery(q url.Values) (int, chart.Pointer, error) {
	raw := q.Get("index")
	if raw == "" {
		return 0, chart.Pointer{}, fmt.Errorf("%w: missing index", ErrBadRequest)
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, chart.Pointer{}, fmt.Errorf("%w: index must be an integer", ErrBadRequest)
	}

	var at chart.Pointer
	for _, p := range []struct {
		name string
		dst  *float64
	}{{"x", &at.X}, {"y", &at.Y}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, chart.Pointer{}, fmt.Errorf("%w: %s must be a number", ErrBadRequest, p.name)
		}
		*p.dst = f
	}
	return index, at, nil
}
