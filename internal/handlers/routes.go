package handlers

import "net/http"

// Handlers bundles every route handler for mux registration.
type Handlers struct {
	Auth         *AuthHandler
	Contacts     *ContactsHandler
	Interactions *InteractionsHandler
	Journal      *JournalHandler
	Summary      *SummaryHandler
}

// NewMux registers all API routes on a fresh ServeMux.
func NewMux(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()
	login := h.Auth.RequireLogin

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Authentication
	mux.HandleFunc("POST /api/register", h.Auth.HandleRegister)
	mux.HandleFunc("POST /api/login", h.Auth.HandleLogin)
	mux.HandleFunc("GET /api/me", h.Auth.HandleMe)
	mux.HandleFunc("POST /api/logout", h.Auth.HandleLogout)

	// Contacts
	mux.HandleFunc("GET /api/contacts", login(h.Contacts.HandleList))
	mux.HandleFunc("POST /api/contacts/upload", login(h.Contacts.HandleUpload))
	mux.HandleFunc("POST /api/contacts/parse-vcf", login(h.Contacts.HandleParseVCF))
	mux.HandleFunc("POST /api/contacts/import-selected", login(h.Contacts.HandleImportSelected))
	mux.HandleFunc("POST /api/contacts/category", login(h.Contacts.HandleUpdateCategory))
	mux.HandleFunc("POST /api/contacts/add", login(h.Contacts.HandleAdd))
	mux.HandleFunc("POST /api/contacts/clear", login(h.Contacts.HandleClear))
	mux.HandleFunc("GET /api/contacts/random", login(h.Contacts.HandleRandom))
	mux.HandleFunc("GET /api/contacts/{id}", login(h.Contacts.HandleGet))
	mux.HandleFunc("PUT /api/contacts/{id}", login(h.Contacts.HandleUpdate))
	mux.HandleFunc("DELETE /api/contacts/{id}", login(h.Contacts.HandleDelete))

	// Interactions
	mux.HandleFunc("GET /api/contacts/{id}/interactions", login(h.Interactions.HandleList))
	mux.HandleFunc("POST /api/contacts/{id}/interactions", login(h.Interactions.HandleAdd))
	mux.HandleFunc("DELETE /api/interactions/{id}", login(h.Interactions.HandleDelete))

	// Journals
	mux.HandleFunc("GET /api/journal/{type}", login(h.Journal.HandleEntries))
	mux.HandleFunc("GET /api/journal/{type}/{date}", login(h.Journal.HandleEntryByDate))
	mux.HandleFunc("POST /api/journal/{type}", login(h.Journal.HandleSave))

	// AI summaries
	mux.HandleFunc("POST /api/summary/{type}", login(h.Summary.HandleSummarize))

	return mux
}
