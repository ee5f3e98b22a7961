package handlers

import (
	"errors"
	"log"
	"net/http"

	"lifeupdate/api/internal/repositories"
	"lifeupdate/api/internal/services"
)

type SummaryHandler struct {
	summaries *services.SummaryService
}

func NewSummaryHandler(summaries *services.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaries: summaries}
}

// HandleSummarize generates an AI summary of recent journal entries.
// The request body may carry a timeframe: "all" or a number of days.
func (h *SummaryHandler) HandleSummarize(w http.ResponseWriter, r *http.Request, userID int64) {
	journalType := r.PathValue("type")

	var body struct {
		Timeframe string `json:"timeframe"`
	}
	// An empty or missing body means "all".
	_ = ReadJSON(r, &body)
	if body.Timeframe == "" {
		body.Timeframe = "all"
	}

	summary, err := h.summaries.Summarize(r.Context(), userID, journalType, body.Timeframe)
	switch {
	case errors.Is(err, repositories.ErrInvalidJournalType):
		WriteError(w, http.StatusBadRequest, "Invalid journal type")
	case errors.Is(err, services.ErrNoEntries):
		WriteError(w, http.StatusNotFound, "No entries found")
	case errors.Is(err, services.ErrNoEntriesInTimeframe):
		WriteError(w, http.StatusNotFound, "No entries in the selected timeframe")
	case err != nil:
		log.Printf("Error generating summary: %v", err)
		WriteError(w, http.StatusInternalServerError, err.Error())
	default:
		WriteJSON(w, http.StatusOK, map[string]string{"summary": summary})
	}
}
