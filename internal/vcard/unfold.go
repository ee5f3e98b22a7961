package vcard

import "strings"

// unfoldReplacer joins folded lines: a newline followed by a single space or
// tab is a continuation marker, and both characters are removed.
var unfoldReplacer = strings.NewReplacer(
	"\r\n ", "",
	"\r\n\t", "",
	"\n ", "",
	"\n\t", "",
)

// UnfoldLines normalizes raw vCard text into logical lines. Folded lines are
// joined, every line is trimmed, and blank lines are dropped. Malformed
// folding never produces an error; joining is best-effort.
func UnfoldLines(raw string) []string {
	unfolded := unfoldReplacer.Replace(raw)

	var lines []string
	for _, line := range strings.Split(unfolded, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
