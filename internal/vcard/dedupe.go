package vcard

import "strings"

// Fingerprints returns the digits-only fingerprints of every field on the
// contact whose key starts with "Phone". Empty fingerprints are omitted.
func (c *Contact) Fingerprints() []string {
	var fps []string
	c.Each(func(key, value string) {
		if !strings.HasPrefix(key, "Phone") || value == "" {
			return
		}
		if digits := Digits(value); digits != "" {
			fps = append(fps, digits)
		}
	})
	return fps
}

// FlagDuplicates sets the Duplicate flag on every contact that shares at
// least one phone fingerprint with the existing set. The set is read-only;
// contacts without phone fields are never flagged.
func FlagDuplicates(contacts []*Contact, existing map[string]bool) {
	for _, c := range contacts {
		c.Duplicate = false
		for _, fp := range c.Fingerprints() {
			if existing[fp] {
				c.Duplicate = true
				break
			}
		}
	}
}
