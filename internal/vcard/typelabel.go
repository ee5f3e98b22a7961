package vcard

import "strings"

// typeLabels maps common vCard type parameters to friendly labels. PREF maps
// to "" because "preferred" is not a useful label on its own.
var typeLabels = map[string]string{
	"CELL":   "Cell",
	"MOBILE": "Cell",
	"HOME":   "Home",
	"WORK":   "Work",
	"MAIN":   "Main",
	"FAX":    "Fax",
	"IPHONE": "iPhone",
	"OTHER":  "Other",
	"PREF":   "",
}

// noiseParams are parameter tokens that never make useful labels.
var noiseParams = map[string]bool{
	"VOICE":         true,
	"INTERNET":      true,
	"PREF":          true,
	"CHARSET=UTF-8": true,
}

// TypeLabel derives a human-readable label from a property's parameter
// tokens, e.g. TEL;type=CELL;type=VOICE -> "Cell". Scanning is left to
// right and the first usable token wins. Returns "" when no parameter
// yields a label.
func TypeLabel(params []string) string {
	for _, p := range params {
		p = strings.TrimSpace(strings.ToUpper(p))
		p = strings.TrimPrefix(p, "TYPE=")
		if label, ok := typeLabels[p]; ok {
			if label == "" {
				continue
			}
			return label
		}
		// Unknown but plain alphabetic token: title-case it as a
		// best-effort label.
		if isAlpha(p) && !noiseParams[p] {
			return titleCase(p)
		}
	}
	return ""
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
