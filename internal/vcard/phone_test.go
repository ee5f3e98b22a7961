package vcard

import "testing"

func TestFormatPhone_TenDigits(t *testing.T) {
	got := FormatPhone("5551234567")
	expected := "+1 (555) 123-4567"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestFormatPhone_TenDigitsWithPunctuation(t *testing.T) {
	got := FormatPhone("(555) 123-4567")
	expected := "+1 (555) 123-4567"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestFormatPhone_ElevenDigitsLeadingOne(t *testing.T) {
	got := FormatPhone("1-555-123-4567")
	expected := "+1 (555) 123-4567"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestFormatPhone_InternationalWithPlus(t *testing.T) {
	// 12 digits grouped in runs of 4 starting from index 0.
	got := FormatPhone("+442079460018")
	expected := "+4420 7946 0018"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestFormatPhone_InternationalNoPlusOverElevenDigits(t *testing.T) {
	got := FormatPhone("442079460018")
	expected := "+4420 7946 0018"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestFormatPhone_PlusShortNumber(t *testing.T) {
	// A plus prefix forces international grouping even for few digits.
	got := FormatPhone("+12345")
	expected := "+1234 5"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestFormatPhone_AmbiguousShortNumber(t *testing.T) {
	// Neither US-shaped nor international: trimmed and returned as-is.
	got := FormatPhone("  555-1234  ")
	expected := "555-1234"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestFormatPhone_NoDigits(t *testing.T) {
	// Nothing to normalize: the original input comes back unchanged.
	got := FormatPhone("ext. office")
	if got != "ext. office" {
		t.Errorf("Expected input unchanged, got %q", got)
	}
}

func TestFormatPhone_Deterministic(t *testing.T) {
	first := FormatPhone("+33 1 42 68 53 00")
	second := FormatPhone("+33 1 42 68 53 00")
	if first != second {
		t.Errorf("Expected identical output, got %q then %q", first, second)
	}
}

func TestDigits_StripsEverythingButDigits(t *testing.T) {
	got := Digits("+1 (555) 123-4567")
	expected := "15551234567"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestDigits_Empty(t *testing.T) {
	if got := Digits("no numbers here"); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}
