package handlers

import (
	"errors"
	"net/http"
	"time"

	"lifeupdate/api/internal/models"
	"lifeupdate/api/internal/repositories"
)

type JournalHandler struct {
	repo *repositories.JournalRepository
}

func NewJournalHandler(repo *repositories.JournalRepository) *JournalHandler {
	return &JournalHandler{repo: repo}
}

// HandleEntries returns all of the user's entries for the journal type.
func (h *JournalHandler) HandleEntries(w http.ResponseWriter, r *http.Request, userID int64) {
	journalType := r.PathValue("type")
	entries, err := h.repo.Entries(r.Context(), userID, journalType)
	if errors.Is(err, repositories.ErrInvalidJournalType) {
		WriteError(w, http.StatusBadRequest, "Invalid journal type")
		return
	}
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{
			"entries": []models.JournalEntry{}, "error": err.Error(),
		})
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// HandleEntryByDate returns the single entry for the date, or null.
func (h *JournalHandler) HandleEntryByDate(w http.ResponseWriter, r *http.Request, userID int64) {
	journalType := r.PathValue("type")
	date := r.PathValue("date")

	entry, err := h.repo.EntryByDate(r.Context(), userID, journalType, date)
	if errors.Is(err, repositories.ErrInvalidJournalType) {
		WriteError(w, http.StatusBadRequest, "Invalid journal type")
		return
	}
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"entry": nil, "error": err.Error()})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"entry": entry})
}

// HandleSave upserts the entry for the given (or today's) date.
func (h *JournalHandler) HandleSave(w http.ResponseWriter, r *http.Request, userID int64) {
	journalType := r.PathValue("type")

	var body struct {
		Date   string `json:"date"`
		Entry1 string `json:"entry1"`
		Entry2 string `json:"entry2"`
		Entry3 string `json:"entry3"`
	}
	if err := ReadJSON(r, &body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date == "" {
		body.Date = time.Now().Format("2006-01-02")
	}

	err := h.repo.Save(r.Context(), userID, journalType, body.Date, body.Entry1, body.Entry2, body.Entry3)
	if errors.Is(err, repositories.ErrInvalidJournalType) {
		WriteError(w, http.StatusBadRequest, "Invalid journal type")
		return
	}
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Entry saved successfully"})
}
