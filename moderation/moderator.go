package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Moderator masks censored words in chat text before it is relayed.
// A Moderator built from an empty word list leaves text untouched.
type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// folded is the searchable form of a text: lower-cased, leet speak mapped back
// to letters, punctuation and spaces dropped. positions[i] is the index in the
// original runes of folded rune i.
type folded struct {
	runes     []rune
	positions []int
}

// NewModerator builds the automaton from the censored words.
func NewModerator(censoredWords []string, replacement rune) (*Moderator, error) {
	// Words made only of noise would fold to nothing and match everywhere.
	patterns := lo.FilterMap(censoredWords, func(w string, _ int) ([]rune, bool) {
		runes := fold([]rune(w)).runes
		return runes, len(runes) > 0
	})
	if len(patterns) == 0 {
		return &Moderator{replacement: replacement}, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, replacement: replacement}, nil
}

// Censor replaces every rune of a matched word, including the noise in between, with the replacement rune.
func (m *Moderator) Censor(text string) string {
	if m == nil || m.matcher == nil {
		return text
	}
	original := []rune(text)
	f := fold(original)
	if len(f.runes) == 0 {
		return text
	}

	terms := m.matcher.MultiPatternSearch(f.runes, false)
	if len(terms) == 0 {
		return text
	}
	for _, term := range terms {
		start, end := term.Pos, term.Pos+len(term.Word)
		if start < 0 || end > len(f.positions) {
			continue
		}
		for i := f.positions[start]; i <= f.positions[end-1]; i++ {
			original[i] = m.replacement
		}
	}
	return string(original)
}

func fold(input []rune) folded {
	f := folded{
		runes:     make([]rune, 0, len(input)),
		positions: make([]int, 0, len(input)),
	}
	for i, r := range input {
		clean := unleet(r)
		if unicode.IsPunct(clean) || unicode.IsSpace(clean) || unicode.IsSymbol(clean) {
			continue
		}
		f.runes = append(f.runes, unicode.ToLower(clean))
		f.positions = append(f.positions, i)
	}
	return f
}

func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
