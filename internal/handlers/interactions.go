package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"lifeupdate/api/internal/models"
	"lifeupdate/api/internal/repositories"
)

type InteractionsHandler struct {
	repo *repositories.InteractionRepository
}

func NewInteractionsHandler(repo *repositories.InteractionRepository) *InteractionsHandler {
	return &InteractionsHandler{repo: repo}
}

// HandleList returns all interactions for a contact, newest first.
func (h *InteractionsHandler) HandleList(w http.ResponseWriter, r *http.Request, userID int64) {
	contactID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid contact id")
		return
	}
	interactions, err := h.repo.ListByContact(r.Context(), contactID, userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if interactions == nil {
		interactions = []models.Interaction{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"interactions": interactions})
}

// HandleAdd records a new interaction note for a contact.
func (h *InteractionsHandler) HandleAdd(w http.ResponseWriter, r *http.Request, userID int64) {
	contactID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	var body struct {
		Date string `json:"date"`
		Note string `json:"note"`
	}
	if err := ReadJSON(r, &body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	note := strings.TrimSpace(body.Note)
	if body.Date == "" || note == "" {
		WriteError(w, http.StatusBadRequest, "Date and note are required")
		return
	}

	if err := h.repo.Add(r.Context(), contactID, userID, body.Date, note); err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Interaction added"})
}

// HandleDelete deletes a single interaction.
func (h *InteractionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request, userID int64) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid interaction id")
		return
	}
	if err := h.repo.Delete(r.Context(), id, userID); err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Interaction deleted"})
}
