// Package vcard parses vCard (.vcf) exports into flat contact records.
//
// The parser is deliberately permissive: real-world exports fold lines,
// quote-printable-encode values, escape delimiters, and repeat properties
// with type parameters. Malformed lines are skipped, never fatal — parsing
// only ever yields fewer or less-complete records. It is one-directional
// (text to records) and handles the fields iOS/macOS Contacts exports:
// FN, TEL, EMAIL, ORG, TITLE, NOTE, ADR, URL, and X-SOCIALPROFILE.
package vcard

import "strings"

// Property is one decoded vCard content line: upper-cased name, raw
// parameter tokens, and the decoded value.
type Property struct {
	Name   string
	Params []string
	Value  string
}

// Parse parses raw vCard text into contact records in source order.
// Records without a Name are discarded. Parse never fails; empty or
// garbage input yields zero records.
func Parse(raw string) []*Contact {
	var contacts []*Contact
	var current *Contact

	for _, line := range UnfoldLines(raw) {
		upper := strings.ToUpper(line)
		if upper == "BEGIN:VCARD" {
			current = NewContact()
			continue
		}
		if upper == "END:VCARD" {
			if current != nil && current.Name() != "" {
				contacts = append(contacts, current)
			}
			current = nil
			continue
		}
		if current == nil {
			continue // property line outside any block
		}

		prop, ok := parseProperty(line)
		if !ok {
			continue
		}
		routeProperty(current, prop)
	}

	return contacts
}

// parseProperty splits a "PROPERTY;params:value" line into a decoded
// Property. ok is false for structurally meaningless lines (no colon, or a
// value that is empty after decoding).
func parseProperty(line string) (Property, bool) {
	propPart, value, found := strings.Cut(line, ":")
	if !found {
		return Property{}, false
	}

	tokens := strings.Split(propPart, ";")
	name := strings.ToUpper(tokens[0])
	params := tokens[1:]

	if hasQuotedPrintable(params) {
		value = decodeQuotedPrintable(value)
	}

	// Unescape common vCard escapes.
	value = strings.ReplaceAll(value, `\n`, " ")
	value = strings.ReplaceAll(value, `\,`, ",")
	value = strings.ReplaceAll(value, `\;`, ";")
	value = strings.TrimSpace(value)
	if value == "" {
		return Property{}, false
	}

	return Property{Name: name, Params: params, Value: value}, true
}

func hasQuotedPrintable(params []string) bool {
	for _, p := range params {
		if strings.Contains(strings.ToUpper(p), "ENCODING=QUOTED-PRINTABLE") {
			return true
		}
	}
	return false
}

// decodeQuotedPrintable decodes =XX hexadecimal escapes into their bytes.
// Invalid escapes are passed through untouched.
func decodeQuotedPrintable(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '=' && i+2 < len(s) {
			hi, okHi := hexValue(s[i+1])
			lo, okLo := hexValue(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// routeProperty maps a parsed property onto the record under construction.
// Unrecognized property names are ignored.
func routeProperty(c *Contact, prop Property) {
	label := TypeLabel(prop.Params)

	switch prop.Name {
	case "FN":
		c.Set("Name", prop.Value)
	case "TEL":
		c.AddField("Phone", FormatPhone(prop.Value), label)
	case "EMAIL":
		c.AddField("Email", prop.Value, label)
	case "ORG":
		c.Set("Company", strings.TrimSpace(strings.ReplaceAll(prop.Value, ";", " ")))
	case "TITLE":
		c.Set("Title", prop.Value)
	case "NOTE":
		c.Set("Notes", prop.Value)
	case "ADR":
		var parts []string
		for _, p := range strings.Split(prop.Value, ";") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 0 {
			c.AddField("Address", strings.Join(parts, ", "), label)
		}
	case "URL":
		c.AddField("Website", prop.Value, label)
	case "X-SOCIALPROFILE":
		// iOS stores the username in an x-user param,
		// e.g. X-SOCIALPROFILE;type=twitter;x-user=johndoe:https://...
		display := prop.Value
		for _, param := range prop.Params {
			if strings.HasPrefix(strings.ToUpper(param), "X-USER=") {
				if _, user, ok := strings.Cut(param, "="); ok && user != "" {
					display = user
				}
			}
		}
		platform := label
		if platform == "" {
			platform = "Social"
		}
		c.AddField(platform, display, "")
	}
}
