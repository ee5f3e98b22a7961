package handlers

import (
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"lifeupdate/api/internal/models"
	"lifeupdate/api/internal/repositories"
	"lifeupdate/api/internal/services"
	"lifeupdate/api/internal/vcard"
)

// maxUploadBytes bounds contact file uploads.
const maxUploadBytes = 10 << 20

type ContactsHandler struct {
	repo     *repositories.ContactRepository
	importer *services.ImportService
}

func NewContactsHandler(repo *repositories.ContactRepository, importer *services.ImportService) *ContactsHandler {
	return &ContactsHandler{repo: repo, importer: importer}
}

// HandleList returns the user's contacts and category names.
func (h *ContactsHandler) HandleList(w http.ResponseWriter, r *http.Request, userID int64) {
	contacts, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{
			"contacts": []models.Contact{}, "categories": []string{}, "error": err.Error(),
		})
		return
	}
	categories, err := h.repo.Categories(r.Context(), userID)
	if err != nil {
		categories = []string{}
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	if categories == nil {
		categories = []string{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"contacts": contacts, "categories": categories})
}

// readUploadedFile pulls the "file" part out of a multipart upload.
func readUploadedFile(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return "", err
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// HandleUpload replaces the user's contacts with an uploaded CSV.
func (h *ContactsHandler) HandleUpload(w http.ResponseWriter, r *http.Request, userID int64) {
	content, err := readUploadedFile(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "No file provided")
		return
	}

	count, err := h.importer.ImportCSV(r.Context(), userID, content)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Contacts uploaded successfully", "count": count,
	})
}

// HandleParseVCF parses an uploaded vCard file, flags duplicates against
// the user's stored contacts, and returns the records for preview. Nothing
// is stored until import-selected.
func (h *ContactsHandler) HandleParseVCF(w http.ResponseWriter, r *http.Request, userID int64) {
	content, err := readUploadedFile(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "No file provided")
		return
	}

	contacts, err := h.importer.ParseVCF(r.Context(), userID, content)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(contacts) == 0 {
		WriteError(w, http.StatusBadRequest, "No contacts found in the file")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

// HandleImportSelected appends only the user-selected contacts.
func (h *ContactsHandler) HandleImportSelected(w http.ResponseWriter, r *http.Request, userID int64) {
	var body struct {
		Contacts []*vcard.Contact `json:"contacts"`
	}
	if err := ReadJSON(r, &body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body.Contacts) == 0 {
		WriteError(w, http.StatusBadRequest, "No contacts selected")
		return
	}

	stats, err := h.importer.ImportSelected(r.Context(), userID, body.Contacts)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Contacts imported successfully", "count": stats.Imported,
	})
}

// HandleUpdateCategory changes a single contact's category by id.
func (h *ContactsHandler) HandleUpdateCategory(w http.ResponseWriter, r *http.Request, userID int64) {
	var body struct {
		ID       *int64  `json:"id"`
		Category *string `json:"category"`
	}
	if err := ReadJSON(r, &body); err != nil || body.ID == nil || body.Category == nil {
		WriteError(w, http.StatusBadRequest, "id and category are required")
		return
	}
	if err := h.repo.UpdateCategory(r.Context(), *body.ID, *body.Category); err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Category updated"})
}

// splitContactBody separates Name and Category from the remaining fields of
// a flat contact object, dropping empty values.
func splitContactBody(c *vcard.Contact) (name, category string, extra *orderedmap.OrderedMap[string, string]) {
	name = strings.TrimSpace(c.Name())
	category, _ = c.Get("Category")
	if category == "" {
		category = repositories.DefaultCategory
	}
	extra = orderedmap.New[string, string]()
	c.Each(func(key, value string) {
		if key == "Name" || key == "Category" {
			return
		}
		if strings.TrimSpace(value) == "" {
			return
		}
		extra.Set(key, value)
	})
	return name, category, extra
}

// HandleAdd manually adds a single contact with any fields.
func (h *ContactsHandler) HandleAdd(w http.ResponseWriter, r *http.Request, userID int64) {
	var body vcard.Contact
	if err := ReadJSON(r, &body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name, category, extra := splitContactBody(&body)
	if name == "" {
		WriteError(w, http.StatusBadRequest, "Name is required")
		return
	}

	contactID, err := h.repo.Insert(r.Context(), userID, name, category, extra)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"message": "Contact added", "contact_id": contactID})
}

// HandleClear deletes all contacts for the current user.
func (h *ContactsHandler) HandleClear(w http.ResponseWriter, r *http.Request, userID int64) {
	if err := h.repo.ClearAll(r.Context(), userID); err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "All contacts cleared"})
}

// HandleRandom picks a random contact, optionally within a category.
func (h *ContactsHandler) HandleRandom(w http.ResponseWriter, r *http.Request, userID int64) {
	contacts, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	category := r.URL.Query().Get("category")
	if category != "" && category != "All Contacts" {
		var filtered []models.Contact
		for _, c := range contacts {
			if c.Category == category {
				filtered = append(filtered, c)
			}
		}
		contacts = filtered
	}
	if len(contacts) == 0 {
		WriteError(w, http.StatusNotFound, "No contacts found")
		return
	}

	person := contacts[rand.Intn(len(contacts))]
	WriteJSON(w, http.StatusOK, map[string]any{"contact": person})
}

func contactIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

// HandleGet returns a single contact with all its fields.
func (h *ContactsHandler) HandleGet(w http.ResponseWriter, r *http.Request, userID int64) {
	id, ok := contactIDFromPath(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "invalid contact id")
		return
	}
	contact, err := h.repo.GetByID(r.Context(), id, userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if contact == nil {
		WriteError(w, http.StatusNotFound, "Contact not found")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"contact": contact})
}

// HandleUpdate replaces a contact's name, category, and extra fields.
func (h *ContactsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request, userID int64) {
	id, ok := contactIDFromPath(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	var body vcard.Contact
	if err := ReadJSON(r, &body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name, category, extra := splitContactBody(&body)
	if name == "" {
		WriteError(w, http.StatusBadRequest, "Name is required")
		return
	}

	if err := h.repo.Update(r.Context(), id, userID, name, category, extra); err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Contact updated"})
}

// HandleDelete deletes a single contact by id.
func (h *ContactsHandler) HandleDelete(w http.ResponseWriter, r *http.Request, userID int64) {
	id, ok := contactIDFromPath(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "invalid contact id")
		return
	}
	if err := h.repo.Delete(r.Context(), id, userID); err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Contact deleted"})
}
