package models

// JournalEntry is one day's entry in either the life or work journal.
// Dates are stored as YYYY-MM-DD strings; the capitalized JSON key matches
// what the frontend has always consumed.
type JournalEntry struct {
	ID     int64  `json:"id"`
	Date   string `json:"Date"`
	Entry1 string `json:"entry1"`
	Entry2 string `json:"entry2"`
	Entry3 string `json:"entry3"`
}
