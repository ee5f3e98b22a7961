package vcard

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse_SingleContact(t *testing.T) {
	raw := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Ada Lovelace",
		"TEL;TYPE=CELL:5551234567",
		"END:VCARD",
	}, "\r\n")

	contacts := Parse(raw)
	if len(contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(contacts))
	}
	c := contacts[0]
	if c.Name() != "Ada Lovelace" {
		t.Errorf("Expected name %q, got %q", "Ada Lovelace", c.Name())
	}
	phone, ok := c.Get("Phone (Cell)")
	if !ok {
		t.Fatalf("Expected Phone (Cell) field, keys: %v", c.Keys())
	}
	if phone != "+1 (555) 123-4567" {
		t.Errorf("Expected normalized phone, got %q", phone)
	}
}

func TestParse_RepeatedTelSameType(t *testing.T) {
	raw := strings.Join([]string{
		"BEGIN:VCARD",
		"FN:Bob",
		"TEL;TYPE=WORK:5551112222",
		"TEL;TYPE=WORK:5553334444",
		"END:VCARD",
	}, "\n")

	contacts := Parse(raw)
	if len(contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(contacts))
	}
	c := contacts[0]
	first, _ := c.Get("Phone (Work)")
	second, ok := c.Get("Phone 2 (Work)")
	if !ok {
		t.Fatalf("Expected second phone under Phone 2 (Work), keys: %v", c.Keys())
	}
	if first != "+1 (555) 111-2222" {
		t.Errorf("First phone overwritten: got %q", first)
	}
	if second != "+1 (555) 333-4444" {
		t.Errorf("Expected %q, got %q", "+1 (555) 333-4444", second)
	}
}

func TestParse_NoFNDropsBlock(t *testing.T) {
	raw := strings.Join([]string{
		"BEGIN:VCARD",
		"TEL:5551234567",
		"EMAIL:nobody@example.com",
		"ORG:Acme",
		"END:VCARD",
		"BEGIN:VCARD",
		"FN:Has Name",
		"END:VCARD",
	}, "\n")

	contacts := Parse(raw)
	if len(contacts) != 1 {
		t.Fatalf("Expected only the named block, got %d contacts", len(contacts))
	}
	if contacts[0].Name() != "Has Name" {
		t.Errorf("Expected %q, got %q", "Has Name", contacts[0].Name())
	}
}

func TestParse_LineFolding(t *testing.T) {
	// A NOTE value split across two physical lines must reassemble.
	folded := "BEGIN:VCARD\r\nFN:Ada\r\nNOTE:first half \r\n and second half\r\nEND:VCARD"
	flat := "BEGIN:VCARD\r\nFN:Ada\r\nNOTE:first half and second half\r\nEND:VCARD"

	foldedNote, _ := Parse(folded)[0].Get("Notes")
	flatNote, _ := Parse(flat)[0].Get("Notes")
	if foldedNote != flatNote {
		t.Errorf("Expected %q, got %q", flatNote, foldedNote)
	}
}

func TestParse_QuotedPrintable(t *testing.T) {
	raw := "BEGIN:VCARD\nFN:Ada\nNOTE;ENCODING=QUOTED-PRINTABLE:Caf=C3=A9\nEND:VCARD"
	contacts := Parse(raw)
	note, _ := contacts[0].Get("Notes")
	if note != "Café" {
		t.Errorf("Expected %q, got %q", "Café", note)
	}
}

func TestParse_EscapedDelimiters(t *testing.T) {
	raw := `BEGIN:VCARD
FN:Ada
NOTE:line one\nwith\, commas\; and semicolons
END:VCARD`
	note, _ := Parse(raw)[0].Get("Notes")
	expected := "line one with, commas; and semicolons"
	if note != expected {
		t.Errorf("Expected %q, got %q", expected, note)
	}
}

func TestParse_PropertiesOutsideBlockIgnored(t *testing.T) {
	raw := "FN:Orphan\nTEL:5551234567\nBEGIN:VCARD\nFN:Real\nEND:VCARD\nFN:Trailer"
	contacts := Parse(raw)
	if len(contacts) != 1 || contacts[0].Name() != "Real" {
		t.Errorf("Expected one contact named Real, got %v", contacts)
	}
}

func TestParse_LineWithoutColonSkipped(t *testing.T) {
	raw := "BEGIN:VCARD\nFN:Ada\nthis line has no separator\nTEL:5551234567\nEND:VCARD"
	contacts := Parse(raw)
	if len(contacts) != 1 {
		t.Fatalf("Expected parse to continue past malformed line, got %d contacts", len(contacts))
	}
	if _, ok := contacts[0].Get("Phone"); !ok {
		t.Errorf("Expected later properties to survive, keys: %v", contacts[0].Keys())
	}
}

func TestParse_EmptyValueDropsProperty(t *testing.T) {
	raw := "BEGIN:VCARD\nFN:Ada\nTITLE:   \nEND:VCARD"
	if contacts := Parse(raw); contacts[0].Has("Title") {
		t.Error("Expected whitespace-only value to be dropped")
	}
}

func TestParse_CaseInsensitiveMarkersAndNames(t *testing.T) {
	raw := "begin:vcard\nfn:Ada\ntel;type=cell:5551234567\nend:vcard"
	contacts := Parse(raw)
	if len(contacts) != 1 {
		t.Fatalf("Expected lower-case markers to work, got %d contacts", len(contacts))
	}
	if !contacts[0].Has("Phone (Cell)") {
		t.Errorf("Expected Phone (Cell), keys: %v", contacts[0].Keys())
	}
}

func TestParse_OrgAddressTitleNoteURL(t *testing.T) {
	raw := strings.Join([]string{
		"BEGIN:VCARD",
		"FN:Grace Hopper",
		"ORG:Navy;Research Division",
		"TITLE:Rear Admiral",
		"NOTE:Invented COBOL",
		"ADR;TYPE=HOME:;;1 Main St;Arlington;VA;22201;USA",
		"URL:https://example.com",
		"END:VCARD",
	}, "\n")

	c := Parse(raw)[0]
	checks := map[string]string{
		"Company":        "Navy Research Division",
		"Title":          "Rear Admiral",
		"Notes":          "Invented COBOL",
		"Address (Home)": "1 Main St, Arlington, VA, 22201, USA",
		"Website":        "https://example.com",
	}
	for key, expected := range checks {
		got, ok := c.Get(key)
		if !ok {
			t.Errorf("Missing key %q, keys: %v", key, c.Keys())
			continue
		}
		if got != expected {
			t.Errorf("%s: expected %q, got %q", key, expected, got)
		}
	}
}

func TestParse_SocialProfile(t *testing.T) {
	raw := strings.Join([]string{
		"BEGIN:VCARD",
		"FN:Ada",
		"X-SOCIALPROFILE;type=twitter;x-user=adalove:https://twitter.com/adalove",
		"X-SOCIALPROFILE:https://mastodon.social/@ada",
		"END:VCARD",
	}, "\n")

	c := Parse(raw)[0]
	twitter, ok := c.Get("Twitter")
	if !ok {
		t.Fatalf("Expected Twitter key from type param, keys: %v", c.Keys())
	}
	if twitter != "adalove" {
		t.Errorf("Expected x-user value, got %q", twitter)
	}
	social, ok := c.Get("Social")
	if !ok {
		t.Fatalf("Expected Social fallback key, keys: %v", c.Keys())
	}
	if social != "https://mastodon.social/@ada" {
		t.Errorf("Expected raw value fallback, got %q", social)
	}
}

func TestParse_UnknownPropertyIgnored(t *testing.T) {
	raw := "BEGIN:VCARD\nFN:Ada\nX-ABUID:ABCD-1234\nPHOTO:base64stuff\nEND:VCARD"
	c := Parse(raw)[0]
	if c.Len() != 1 {
		t.Errorf("Expected only Name, got keys: %v", c.Keys())
	}
}

func TestParse_Idempotent(t *testing.T) {
	raw := strings.Join([]string{
		"BEGIN:VCARD",
		"FN:Ada",
		"TEL;TYPE=CELL:5551234567",
		"TEL;TYPE=CELL:5559998888",
		"EMAIL;TYPE=WORK:ada@example.com",
		"END:VCARD",
	}, "\r\n")

	first := Parse(raw)
	second := Parse(raw)
	if len(first) != len(second) {
		t.Fatalf("Expected same record count, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if !reflect.DeepEqual(first[i].Keys(), second[i].Keys()) {
			t.Errorf("Record %d key order differs: %v vs %v", i, first[i].Keys(), second[i].Keys())
		}
		first[i].Each(func(k, v string) {
			if got, _ := second[i].Get(k); got != v {
				t.Errorf("Record %d field %q differs: %q vs %q", i, k, v, got)
			}
		})
	}
}

func TestParse_FNLastOccurrenceWins(t *testing.T) {
	raw := "BEGIN:VCARD\nFN:First\nFN:Second\nEND:VCARD"
	if name := Parse(raw)[0].Name(); name != "Second" {
		t.Errorf("Expected %q, got %q", "Second", name)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if contacts := Parse(""); len(contacts) != 0 {
		t.Errorf("Expected no contacts, got %d", len(contacts))
	}
	if contacts := Parse("just some text\nwith no vcards"); len(contacts) != 0 {
		t.Errorf("Expected no contacts, got %d", len(contacts))
	}
}
