// Package morphology inflects sentences against an OpenCorpora-style
// plain-text dictionary.
//
// A dictionary is indexed once with Build (or BuildFromReader, LoadFile)
// and then wrapped in a Morpher. Tokens of the form WORD{TAG,TAG} are
// replaced with the first dictionary form of lemma WORD that carries the
// requested tags; other tokens pass through case-normalized.
//
// The index and the Morpher are read-only after construction and safe
// for concurrent use.
package morphology

import "strings"

// Morpher rewrites sentences using one LemmaIndex.
type Morpher struct {
	index *LemmaIndex
}

// New returns a Morpher backed by index. The index is shared, not copied.
func New(index *LemmaIndex) *Morpher {
	return &Morpher{index: index}
}

// Index returns the index the Morpher reads from.
func (m *Morpher) Index() *LemmaIndex {
	return m.index
}

// Morph rewrites every WORD{TAGS} token of sentence to the matching form
// of lemma WORD and returns the tokens joined by single spaces.
//
// A token whose lemma is unknown, or whose lemma has no qualifying form,
// is emitted as its normalized base word. A malformed token (see
// ParseToken) is emitted literally, normalized, so no token is ever lost.
func (m *Morpher) Morph(sentence string) string {
	out, _ := m.morph(sentence, false)
	return out
}

// MorphStrict is Morph, except that the first malformed token aborts with
// a *TokenError wrapping ErrMalformedToken.
func (m *Morpher) MorphStrict(sentence string) (string, error) {
	return m.morph(sentence, true)
}

func (m *Morpher) morph(sentence string, strict bool) (string, error) {
	n := newNormalizer()
	words := strings.Fields(sentence)
	result := make([]string, 0, len(words))

	for i, w := range words {
		tok, err := parseToken(n, w)
		if err != nil {
			if strict {
				return "", &TokenError{Index: i, Token: w}
			}
			result = append(result, n.key(w))
			continue
		}
		result = append(result, m.resolve(tok))
	}
	return strings.Join(result, " "), nil
}

// resolve picks the output word for a well-formed token.
func (m *Morpher) resolve(tok Token) string {
	if !tok.HasSpec {
		return tok.Base
	}
	if form, ok := m.index.Resolve(tok.Base, tok.Spec); ok {
		return form
	}
	return tok.Base
}

// Inflect returns the form of lemma word carrying tags, or word itself
// (normalized) when there is none. ok reports whether a form was found.
func (m *Morpher) Inflect(word string, tags ...string) (string, bool) {
	n := newNormalizer()
	key := n.key(word)
	form, ok := m.index.Resolve(key, parseAttributes(n, strings.Join(tags, ",")))
	if !ok {
		return key, false
	}
	return form, true
}

// Paradigm returns all forms of lemma word, or nil.
func (m *Morpher) Paradigm(word string) *Paradigm {
	return m.index.Paradigm(word)
}

// Lemmatize returns the lemmas that list form among their forms.
func (m *Morpher) Lemmatize(form string) []*LemmaEntry {
	return m.index.Lemmatize(form)
}
