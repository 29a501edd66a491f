// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/civic-vote/middleware"
	"github.com/danielhkuo/civic-vote/pollstore"
)

type ResultsHandler struct {
	store *pollstore.Store
}

func NewResultsHandler(store *pollstore.Store) *ResultsHandler {
	return &ResultsHandler{store: store}
}

// GetResults handles GET /polls/{id}/results
// Percentages are whole numbers rounded half up and may not sum to 100
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	results, err := h.store.Results(pollID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
