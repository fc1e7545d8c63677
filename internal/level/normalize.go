package level

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Whitespace includes the ASCII separators \x1c-\x1f.
var (
	// a whitespace-delimited level token; the trailing boundary is not consumed so that
	// consecutive tokens like "1 2" both match
	spacedLevel = regexp2.MustCompile(`[\s\x1c-\x1f]+(\d{1,2}\+?)(?=[\s\x1c-\x1f]|$)`, regexp2.None)
	// a level glued to the end of the text
	trailingLevel = regexp2.MustCompile(`(\d{1,2}\+?)$`, regexp2.None)
)

// Entry is a cell value split into its book name, reading level and trailing note.
type Entry struct {
	Name   string
	Level  string
	Suffix string
}

// String renders the entry in its canonical multi-line form
func (e Entry) String() string {
	s := e.Name + "\n" + e.Level
	if e.Suffix != "" {
		s += "\n" + e.Suffix
	}
	return s
}

// Normalize reformats a raw cell value into "Name\nLevel[\nSuffix]".
// An empty level means none was found; the trimmed input is returned as text in that case.
// Empty input yields two empty strings.
func Normalize(raw string) (text string, level string) {
	if raw == "" {
		return "", ""
	}
	entry, ok := Parse(raw)
	if !ok {
		return trim(raw), ""
	}
	return entry.String(), entry.Level
}

// Parse splits raw into an Entry. It reports false when no level token is present.
func Parse(raw string) (Entry, bool) {
	val := trim(raw)

	m := lastMatch(spacedLevel, val)
	if m == nil {
		m = lastMatch(trailingLevel, val)
	}
	if m == nil {
		return Entry{}, false
	}

	// match offsets count runes
	runes := []rune(val)
	return Entry{
		Name:   TitleCase(trim(string(runes[:m.Index]))),
		Level:  m.GroupByNumber(1).String(),
		Suffix: trim(string(runes[m.Index+m.Length:])),
	}, true
}

// lastMatch returns the right-most of the non-overlapping matches of re in s, or nil.
func lastMatch(re *regexp2.Regexp, s string) *regexp2.Match {
	var last *regexp2.Match
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil {
		last = m
		m, err = re.FindNextMatch(m)
	}
	return last
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// TitleCase upper-cases the first letter of every whitespace-separated word and lower-cases
// the rest. Words are re-joined with a single space.
func TitleCase(s string) string {
	title := cases.Title(language.Und)
	lower := cases.Lower(language.Und)

	words := strings.FieldsFunc(s, isSpace)
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = title.String(w[:size]) + lower.String(w[size:])
	}
	return strings.Join(words, " ")
}
