// Package anonymise strips structured personal data from journal text before it
// leaves the service. Only the scrubbed text and per-pattern counts are returned;
// original values are never recorded.
package anonymise

import (
	"regexp"
	"strings"
)

type Result struct {
	Text string
	// Replacements counts matches per pattern name.
	Replacements map[string]int
}

func (r Result) HadPII() bool {
	for _, n := range r.Replacements {
		if n > 0 {
			return true
		}
	}
	return false
}

func (r Result) Total() int {
	total := 0
	for _, n := range r.Replacements {
		total += n
	}
	return total
}

type pattern struct {
	name  string
	re    *regexp.Regexp
	token string
	// digitBounded rejects a match that touches a digit on either side.
	digitBounded bool
}

// Patterns run in order, so earlier ones win on overlapping text
// (SSN before generic digit runs, NHS before phones).
var patterns = []pattern{
	{name: "EMAIL", re: regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`), token: "[EMAIL]"},
	{name: "SSN", re: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), token: "[SSN]"},
	{name: "NI_NUMBER", re: regexp.MustCompile(`(?i)\b[A-CEGHJ-PR-TW-Z]{2}\s?\d{2}\s?\d{2}\s?\d{2}\s?[A-D]\b`), token: "[NI_NUMBER]"},
	{name: "NHS_NUMBER", re: regexp.MustCompile(`\b\d{3}\s\d{3}\s\d{4}\b`), token: "[NHS_NUMBER]"},
	{name: "NHS_NUMBER_NOSPACE", re: regexp.MustCompile(`\b\d{10}\b`), token: "[NHS_NUMBER]"},
	{
		name:         "PHONE_UK",
		re:           regexp.MustCompile(`\+44\s?\(?\d\)?\s?\d[\d\s\-]{7,10}|0[1-9][\d\s\-]{8,12}`),
		token:        "[PHONE]",
		digitBounded: true,
	},
	{
		name:         "PHONE_US",
		re:           regexp.MustCompile(`\+?1[\s\-]?\(?\d{3}\)?[\s\-]?\d{3}[\s\-]?\d{4}|\(?\d{3}\)?[\s\-]?\d{3}[\s\-]?\d{4}`),
		token:        "[PHONE]",
		digitBounded: true,
	},
	{name: "POSTCODE_UK", re: regexp.MustCompile(`(?i)\b[A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2}\b`), token: "[POSTCODE]"},
	{name: "ZIP_US", re: regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`), token: "[ZIPCODE]"},
	{name: "URL", re: regexp.MustCompile(`https?://[^\s,;"'<>)}\]]{3,}|www\.[^\s,;"'<>)}\]]{3,}`), token: "[URL]"},
	{name: "DATE_NUMERIC", re: regexp.MustCompile(`\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b`), token: "[DATE]"},
}

var spaces = regexp.MustCompile(`  +`)

type Anonymiser struct{}

func New() *Anonymiser {
	return &Anonymiser{}
}

// Anonymise returns text with every pattern match replaced by its token.
// Blank input yields an empty result.
func (a *Anonymiser) Anonymise(text string) Result {
	res := Result{Replacements: make(map[string]int)}
	if strings.TrimSpace(text) == "" {
		return res
	}
	for _, p := range patterns {
		var n int
		text, n = p.apply(text)
		if n > 0 {
			res.Replacements[p.name] += n
		}
	}
	res.Text = strings.TrimSpace(spaces.ReplaceAllString(text, " "))
	return res
}

func (p pattern) apply(text string) (string, int) {
	if !p.digitBounded {
		n := len(p.re.FindAllStringIndex(text, -1))
		if n == 0 {
			return text, 0
		}
		return p.re.ReplaceAllLiteralString(text, p.token), n
	}
	var b strings.Builder
	count, pos, last := 0, 0, 0
	for pos < len(text) {
		loc := p.re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		// separators trailing a phone number belong to the sentence
		for end > start && (text[end-1] == ' ' || text[end-1] == '-') {
			end--
		}
		if isDigitAt(text, start-1) || isDigitAt(text, end) {
			pos = start + 1
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(p.token)
		last, pos = end, end
		count++
	}
	if count == 0 {
		return text, 0
	}
	b.WriteString(text[last:])
	return b.String(), count
}

func isDigitAt(s string, i int) bool {
	return i >= 0 && i < len(s) && s[i] >= '0' && s[i] <= '9'
}
