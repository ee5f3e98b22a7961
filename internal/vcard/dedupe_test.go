package vcard

import "testing"

func parseOne(t *testing.T, raw string) *Contact {
	t.Helper()
	contacts := Parse(raw)
	if len(contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(contacts))
	}
	return contacts[0]
}

func TestFlagDuplicates_MatchingFingerprint(t *testing.T) {
	raw := "BEGIN:VCARD\nFN:Ada\nTEL:555-123-4567\nEND:VCARD"
	c := parseOne(t, raw)

	existing := map[string]bool{"15551234567": true}
	FlagDuplicates([]*Contact{c}, existing)
	if !c.Duplicate {
		t.Error("Expected duplicate flag for matching fingerprint")
	}
}

func TestFlagDuplicates_NoMatch(t *testing.T) {
	raw := "BEGIN:VCARD\nFN:Ada\nTEL:5559999999\nEND:VCARD"
	c := parseOne(t, raw)

	FlagDuplicates([]*Contact{c}, map[string]bool{"15551234567": true})
	if c.Duplicate {
		t.Error("Expected no duplicate flag")
	}
}

func TestFlagDuplicates_AnyPhoneMatches(t *testing.T) {
	raw := "BEGIN:VCARD\nFN:Ada\nTEL;TYPE=HOME:5551112222\nTEL;TYPE=CELL:5553334444\nEND:VCARD"
	c := parseOne(t, raw)

	// Only the second phone is known.
	FlagDuplicates([]*Contact{c}, map[string]bool{"15553334444": true})
	if !c.Duplicate {
		t.Error("Expected flag when any phone fingerprint matches")
	}
}

func TestFlagDuplicates_EmptySet(t *testing.T) {
	raw := "BEGIN:VCARD\nFN:Ada\nTEL:5551234567\nEND:VCARD"
	c := parseOne(t, raw)
	c.Duplicate = true // stale flag must be cleared

	FlagDuplicates([]*Contact{c}, nil)
	if c.Duplicate {
		t.Error("Expected flag cleared against empty set")
	}
}

func TestFlagDuplicates_NoPhoneFields(t *testing.T) {
	raw := "BEGIN:VCARD\nFN:Ada\nEMAIL:ada@example.com\nEND:VCARD"
	c := parseOne(t, raw)

	FlagDuplicates([]*Contact{c}, map[string]bool{"15551234567": true})
	if c.Duplicate {
		t.Error("Expected contacts without phones never flagged")
	}
}

func TestFingerprints_OnlyPhoneKeys(t *testing.T) {
	c := NewContact()
	c.Set("Name", "Ada")
	c.AddField("Phone", "+1 (555) 123-4567", "Cell")
	c.AddField("Phone", "+1 (555) 999-8888", "Work")
	c.AddField("Email", "ada@example.com", "")
	c.Set("Fax", "555-000-1111")

	fps := c.Fingerprints()
	if len(fps) != 2 {
		t.Fatalf("Expected 2 fingerprints, got %v", fps)
	}
	if fps[0] != "15551234567" || fps[1] != "15559998888" {
		t.Errorf("Unexpected fingerprints: %v", fps)
	}
}
