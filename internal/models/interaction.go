package models

// Interaction is one dated note attached to a contact.
type Interaction struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
	Note string `json:"note"`
}
