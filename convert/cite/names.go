package cite

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// personName is author name split into parts. Both "First Middle Last" and
// "Last, First Middle" forms are accepted.
type personName struct {
	given   []string
	surname string
}

func parseName(s string) personName {
	s = strings.Join(strings.Fields(s), " ")
	if last, first, ok := strings.Cut(s, ","); ok {
		return personName{surname: strings.TrimSpace(last), given: strings.Fields(first)}
	}
	parts := strings.Fields(s)
	switch len(parts) {
	case 0:
		return personName{}
	case 1:
		return personName{surname: parts[0]}
	}
	return personName{surname: parts[len(parts)-1], given: parts[:len(parts)-1]}
}

// initials renders given names as "J. R." keeping hyphenated parts.
func (n personName) initials() string {
	out := make([]string, 0, len(n.given))
	for _, g := range n.given {
		var parts []string
		for p := range strings.SplitSeq(g, "-") {
			if r, _ := utf8.DecodeRuneInString(p); r != utf8.RuneError && unicode.IsLetter(r) {
				parts = append(parts, string(unicode.ToUpper(r))+".")
			}
		}
		if len(parts) > 0 {
			out = append(out, strings.Join(parts, "-"))
		}
	}
	return strings.Join(out, " ")
}

// inverted is "Surname, Given".
func (n personName) inverted(initials bool) string {
	given := strings.Join(n.given, " ")
	if initials {
		given = n.initials()
	}
	if given == "" {
		return n.surname
	}
	if n.surname == "" {
		return given
	}
	return n.surname + ", " + given
}

// natural is "Given Surname".
func (n personName) natural() string {
	return strings.TrimSpace(strings.Join(append(append([]string{}, n.given...), n.surname), " "))
}

// joinNames joins names with sep, final one is preceded by conj. pairSep is
// used instead of sep when there are exactly two names.
func joinNames(names []string, sep, conj, pairSep string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + pairSep + conj + " " + names[1]
	}
	return strings.Join(names[:len(names)-1], sep) + sep + conj + " " + names[len(names)-1]
}

func cleanAuthors(authors []string) []string {
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
