package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListFranchiseRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFranchiseRecords")
	defer span.End()

	items, err := h.franchiseService.ListRecords(ctx)
	if err != nil {
		h.fail(ctx, w, "list franchise records failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recordsToDTO(items))
}

func (h *Handler) GetFranchiseRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFranchiseRecords")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	items, err := h.franchiseService.GetRecords(ctx, name)
	if err != nil {
		h.fail(ctx, w, "get franchise records failed", err, "franchise", name)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recordsToDTO(items))
}
