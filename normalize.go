package morphology

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// normalizer folds dictionary words, sentence tokens and attribute tags
// into one comparable form: NFC composition, then Russian upper case.
//
// A cases.Caser keeps per-call state and must not be shared between
// goroutines, so every Build and every Morph call owns its own normalizer.
type normalizer struct {
	upper cases.Caser
}

func newNormalizer() *normalizer {
	return &normalizer{upper: cases.Upper(language.Russian)}
}

// key returns the normalized form of s.
func (n *normalizer) key(s string) string {
	return n.upper.String(norm.NFC.String(s))
}

// Normalize returns the case-normalized lookup key for s, the same
// transformation applied to every dictionary word and sentence token.
func Normalize(s string) string {
	return newNormalizer().key(s)
}

// isAttrSep reports whether r separates attribute tags. Both the
// dictionary ("NOUN anim,femn") and the specifier ("noun,sing") use it.
func isAttrSep(r rune) bool {
	return r == ' ' || r == ','
}

// AttributeSet is an unordered set of grammatical tags, stored sorted and
// de-duplicated so that two sets with the same members compare equal.
type AttributeSet []string

// NewAttributeSet builds a set from already-normalized tags.
func NewAttributeSet(tags ...string) AttributeSet {
	set := make(AttributeSet, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			set = append(set, t)
		}
	}
	slices.Sort(set)
	return slices.Compact(set)
}

// ParseAttributes splits raw on spaces and commas, drops empty fragments
// and normalizes every tag.
func ParseAttributes(raw string) AttributeSet {
	return parseAttributes(newNormalizer(), raw)
}

func parseAttributes(n *normalizer, raw string) AttributeSet {
	fields := strings.FieldsFunc(raw, isAttrSep)
	for i, f := range fields {
		fields[i] = n.key(f)
	}
	return NewAttributeSet(fields...)
}

// Contains reports whether tag is a member of s.
func (s AttributeSet) Contains(tag string) bool {
	_, ok := slices.BinarySearch(s, tag)
	return ok
}

// ContainsAll reports whether every tag of req is a member of s.
// The empty request is satisfied by any set.
func (s AttributeSet) ContainsAll(req AttributeSet) bool {
	if len(req) > len(s) {
		return false
	}
	for _, t := range req {
		if !s.Contains(t) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o hold exactly the same tags.
func (s AttributeSet) Equal(o AttributeSet) bool {
	return slices.Equal(s, o)
}

// Key returns the canonical joined form of s, used by the exact-match index.
func (s AttributeSet) Key() string {
	return strings.Join(s, ",")
}

func (s AttributeSet) String() string {
	return "{" + s.Key() + "}"
}
