package morphology

import (
	"fmt"
	"slices"
	"strings"
)

// MatchPolicy selects how a requested specifier is matched against the
// forms of a lemma. Both policies pick the first qualifying form in
// source-file order.
type MatchPolicy int

const (
	// MatchSubset accepts a form when every requested tag is present on it.
	MatchSubset MatchPolicy = iota
	// MatchExact accepts a form only when its tag set equals the request.
	MatchExact
)

func (p MatchPolicy) String() string {
	switch p {
	case MatchExact:
		return "exact"
	default:
		return "subset"
	}
}

// ParseMatchPolicy maps "subset" or "exact" (any case) to a MatchPolicy.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "subset":
		return MatchSubset, nil
	case "exact":
		return MatchExact, nil
	default:
		return MatchSubset, fmt.Errorf("unknown match policy %q (want subset or exact)", s)
	}
}

// LemmaIndex maps normalized lemma keys to their entries.
// It is built once by Build and never modified afterwards, so any number
// of goroutines may query it without synchronization.
type LemmaIndex struct {
	policy MatchPolicy

	// lemmas maps Normalize(head) → *LemmaEntry.
	lemmas map[string]*LemmaEntry

	// surfaces maps Normalize(form) → entries containing that form,
	// in the order the entries were created.
	surfaces map[string][]*LemmaEntry
}

func newLemmaIndex(p MatchPolicy) *LemmaIndex {
	return &LemmaIndex{
		policy:   p,
		lemmas:   make(map[string]*LemmaEntry),
		surfaces: make(map[string][]*LemmaEntry),
	}
}

// entry returns the entry for key, creating it on first use.
func (x *LemmaIndex) entry(key string) *LemmaEntry {
	e, ok := x.lemmas[key]
	if !ok {
		e = newLemmaEntry(key)
		x.lemmas[key] = e
	}
	return e
}

// addForm appends dl to the entry for key and records the reverse mapping.
func (x *LemmaIndex) addForm(key string, dl DictionaryLine) {
	e := x.entry(key)
	e.add(dl)
	if !slices.Contains(x.surfaces[dl.Word], e) {
		x.surfaces[dl.Word] = append(x.surfaces[dl.Word], e)
	}
}

// seal finishes construction: per-policy lookup tables are computed here.
func (x *LemmaIndex) seal() {
	if x.policy != MatchExact {
		return
	}
	for _, e := range x.lemmas {
		e.buildExact()
	}
}

// Policy returns the matching policy the index was built with.
func (x *LemmaIndex) Policy() MatchPolicy {
	return x.policy
}

// Len returns the number of lemmas.
func (x *LemmaIndex) Len() int {
	return len(x.lemmas)
}

// Lemma looks up an entry by any spelling of its head form.
func (x *LemmaIndex) Lemma(word string) *LemmaEntry {
	return x.lemmas[Normalize(word)]
}

// LemmaByKey looks up an entry by its already-normalized key.
func (x *LemmaIndex) LemmaByKey(key string) *LemmaEntry {
	return x.lemmas[key]
}

// Keys returns all lemma keys in sorted order.
func (x *LemmaIndex) Keys() []string {
	keys := make([]string, 0, len(x.lemmas))
	for k := range x.lemmas {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Resolve returns the surface of the first form of lemma key satisfying
// req under the index policy. key and req must already be normalized.
// ok is false when the lemma is unknown or no form qualifies.
func (x *LemmaIndex) Resolve(key string, req AttributeSet) (string, bool) {
	e, ok := x.lemmas[key]
	if !ok {
		return "", false
	}
	f, ok := e.find(x.policy, req)
	if !ok {
		return "", false
	}
	return f.Surface, true
}

// Lemmatize returns every lemma that lists form among its forms.
func (x *LemmaIndex) Lemmatize(form string) []*LemmaEntry {
	return slices.Clone(x.surfaces[Normalize(form)])
}
