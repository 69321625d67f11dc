package places

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//go:embed gazetteer.tsv
var lexicon string

type placeKind uint8

const (
	kindCountry placeKind = iota + 1
	kindRegion
	kindCity
)

var placeKinds = map[string]placeKind{
	"country": kindCountry,
	"region":  kindRegion,
	"city":    kindCity,
}

// Abbreviated words that end with a period without ending a sentence.
var abbreviations = map[string]struct{}{
	"st": {},
	"mt": {},
	"ft": {},
}

const sentenceBreaks = ".!?;:()[]{}\"“”"

const flagCapitalized = "capitalized"

type lexiconEntry struct {
	kind placeKind
	// exact is set for upper-case abbreviations, which match only verbatim.
	exact string
	// capitalized names double as common words ("turkey", "chad") and only
	// match with an upper-case initial.
	capitalized bool
}

// Gazetteer recognizes places listed in an embedded lexicon. It is immutable
// after construction and safe for concurrent use.
type Gazetteer struct {
	entries  map[string]lexiconEntry
	maxWords int
}

func NewGazetteer() (*Gazetteer, error) {
	return newGazetteer(lexicon)
}

func newGazetteer(src string) (*Gazetteer, error) {
	g := &Gazetteer{
		entries: make(map[string]lexiconEntry),
	}

	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		columns := strings.Split(line, "\t")
		if len(columns) < 2 || len(columns) > 3 {
			return nil, fmt.Errorf("gazetteer line %d: want 2 or 3 tab separated columns, got %d", i+1, len(columns))
		}

		kindName, name := columns[0], columns[1]

		kind, ok := placeKinds[kindName]
		if !ok {
			return nil, fmt.Errorf("gazetteer line %d: unknown kind %q", i+1, kindName)
		}

		words := strings.Fields(name)
		if len(words) == 0 {
			return nil, fmt.Errorf("gazetteer line %d: empty name", i+1)
		}

		key := strings.Join(lo.Map(words, func(w string, _ int) string { return fold(w) }), " ")
		if _, exists := g.entries[key]; exists {
			continue
		}

		entry := lexiconEntry{kind: kind}
		if isAbbreviation(name) {
			entry.exact = name
		}

		if len(columns) == 3 {
			if columns[2] != flagCapitalized {
				return nil, fmt.Errorf("gazetteer line %d: unknown flag %q", i+1, columns[2])
			}

			entry.capitalized = true
		}

		g.entries[key] = entry
		g.maxWords = max(g.maxWords, len(words))
	}

	if len(g.entries) == 0 {
		return nil, errors.New("gazetteer is empty")
	}

	return g, nil
}

func (g *Gazetteer) Name() string {
	return RecognizerGazetteer
}

func (g *Gazetteer) Ready(context.Context) error {
	return nil
}

// DetectPlaces returns every lexicon match in order. Adjacent matches are
// merged into one place unless punctuation separates them; "City, Country"
// and "City, Region" stay together.
func (g *Gazetteer) DetectPlaces(_ context.Context, text string) ([]string, error) {
	tokens := tokenize(text)

	var (
		found   []string
		current *span
	)

	flush := func() {
		if current != nil {
			found = append(found, text[current.start:current.end])
			current = nil
		}
	}

	for i := 0; i < len(tokens); {
		entry, n := g.match(tokens[i:])
		if n == 0 {
			flush()
			i++

			continue
		}

		first, last := tokens[i], tokens[i+n-1]
		if current != nil && !current.accepts(first, entry.kind) {
			flush()
		}

		if current == nil {
			current = &span{start: first.start}
		}

		current.end = last.end
		current.kind = entry.kind
		current.comma = last.comma

		if last.stop {
			flush()
		}

		i += n
	}

	flush()

	return found, nil
}

// match finds the longest lexicon entry starting at tokens[0] and returns it
// with the number of tokens it covers, or zero when nothing matches.
func (g *Gazetteer) match(tokens []token) (lexiconEntry, int) {
	for n := min(g.maxWords, len(tokens)); n > 0; n-- {
		if !contiguous(tokens[:n]) {
			continue
		}

		keys := make([]string, n)
		cores := make([]string, n)
		for i, t := range tokens[:n] {
			keys[i] = t.key
			cores[i] = t.core
		}

		entry, ok := g.entries[strings.Join(keys, " ")]
		if !ok {
			continue
		}

		if entry.exact != "" && strings.Join(cores, " ") != entry.exact {
			continue
		}

		if entry.capitalized && !startsUpper(cores[0]) {
			continue
		}

		return entry, n
	}

	return lexiconEntry{}, 0
}

type span struct {
	start, end int
	kind       placeKind
	comma      bool
}

func (s *span) accepts(next token, kind placeKind) bool {
	if next.breakBefore {
		return false
	}

	if s.comma {
		return s.kind == kindCity && (kind == kindRegion || kind == kindCountry)
	}

	return true
}

type token struct {
	// start and end delimit the token without surrounding punctuation.
	start, end int
	core       string
	key        string

	breakBefore bool
	comma       bool
	stop        bool
}

// contiguous reports whether tokens can form a single multi-word name.
func contiguous(tokens []token) bool {
	for i, t := range tokens {
		if i > 0 && t.breakBefore {
			return false
		}

		if i < len(tokens)-1 && (t.comma || t.stop) {
			return false
		}
	}

	return true
}

func tokenize(text string) []token {
	var tokens []token

	markPrev := func(punct string) {
		if len(tokens) == 0 {
			return
		}

		prev := &tokens[len(tokens)-1]
		if strings.Contains(punct, ",") {
			prev.comma = true
		}

		if strings.Trim(punct, ",") != "" {
			prev.stop = true
		}
	}

	for _, f := range fields(text) {
		word := text[f.start:f.end]

		coreStart := f.start + len(word) - len(strings.TrimLeftFunc(word, isPunct))
		coreEnd := f.start + len(strings.TrimRightFunc(word, isPunct))

		if coreStart >= coreEnd {
			markPrev(word)

			continue
		}

		core := text[coreStart:coreEnd]
		trailing := text[coreEnd:f.end]

		possessive := false
		for _, suffix := range []string{"'s", "’s", "'S"} {
			if strings.HasSuffix(core, suffix) && len(core) > len(suffix) {
				coreEnd -= len(suffix)
				core = core[:len(core)-len(suffix)]
				possessive = true

				break
			}
		}

		key := fold(core)

		t := token{
			start:       coreStart,
			end:         coreEnd,
			core:        core,
			key:         key,
			breakBefore: coreStart > f.start,
			comma:       strings.Contains(trailing, ","),
			stop:        possessive || strings.ContainsAny(trailing, sentenceBreaks),
		}

		if _, ok := abbreviations[key]; ok && trailing == "." {
			t.stop = false
		}

		tokens = append(tokens, t)
	}

	return tokens
}

type field struct {
	start, end int
}

// fields splits text on white space and keeps byte offsets.
func fields(text string) []field {
	var (
		out   []field
		start = -1
	)

	for i, r := range text {
		switch {
		case unicode.IsSpace(r):
			if start >= 0 {
				out = append(out, field{start: start, end: i})
				start = -1
			}
		case start < 0:
			start = i
		}
	}

	if start >= 0 {
		out = append(out, field{start: start, end: len(text)})
	}

	return out
}

func isPunct(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func isAbbreviation(name string) bool {
	return len(name) > 1 && strings.ToUpper(name) == name && !strings.ContainsRune(name, ' ')
}

// fold lower-cases s and strips diacritics.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	return cases.Fold().String(stripped)
}
