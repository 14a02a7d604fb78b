package morphology

import "strings"

// DictionaryLine is one parsed form line of the dictionary source.
// It is transient: the builder turns it into a WordForm and drops it.
type DictionaryLine struct {
	// Word is the normalized surface form.
	Word string
	// POS is the first tag after the tab, the part-of-speech marker.
	POS PartOfSpeech
	// Attributes holds every tag on the line, POS included.
	Attributes AttributeSet
}

// parseFormLine parses "WORD<TAB>POS ATTR,ATTR,..." into a DictionaryLine.
// Only the first tab separates the word; the rest is the tag list.
func parseFormLine(n *normalizer, line string) (DictionaryLine, error) {
	word, rest, ok := strings.Cut(line, "\t")
	if !ok {
		return DictionaryLine{}, ErrMalformedLine
	}
	word = strings.TrimSpace(word)
	if word == "" {
		return DictionaryLine{}, ErrMalformedLine
	}

	dl := DictionaryLine{
		Word:       n.key(word),
		Attributes: parseAttributes(n, rest),
	}
	if first := strings.FieldsFunc(rest, isAttrSep); len(first) > 0 {
		dl.POS = PartOfSpeech(n.key(first[0]))
	}
	return dl, nil
}

// WordForm is one inflected surface form of a lemma with its tag set.
type WordForm struct {
	// Surface is the normalized form as written in the dictionary.
	Surface string
	// Attributes is the full tag set of this form, part of speech included.
	Attributes AttributeSet
	pos        PartOfSpeech
}

// POS returns the part of speech the dictionary line declared first.
func (f WordForm) POS() PartOfSpeech {
	return f.pos
}

// Satisfies reports whether the form carries every requested tag.
func (f WordForm) Satisfies(req AttributeSet) bool {
	return f.Attributes.ContainsAll(req)
}

// LemmaEntry is a dictionary head word together with all of its forms.
// The head form is stored as the first element of Forms.
type LemmaEntry struct {
	// Key is the normalized head form and the index key.
	Key string
	// Forms lists every form in source-file order.
	Forms []WordForm

	// exact maps AttributeSet.Key to the index of the first form carrying
	// exactly that set. Only populated for MatchExact indexes.
	exact map[string]int
}

func newLemmaEntry(key string) *LemmaEntry {
	return &LemmaEntry{Key: key}
}

func (e *LemmaEntry) add(dl DictionaryLine) {
	e.Forms = append(e.Forms, WordForm{
		Surface:    dl.Word,
		Attributes: dl.Attributes,
		pos:        dl.POS,
	})
}

// Head returns the head form, the first form seen for the group.
func (e *LemmaEntry) Head() WordForm {
	return e.Forms[0]
}

// buildExact fills the exact-key map, keeping the first form per key.
func (e *LemmaEntry) buildExact() {
	e.exact = make(map[string]int, len(e.Forms))
	for i, f := range e.Forms {
		k := f.Attributes.Key()
		if _, seen := e.exact[k]; !seen {
			e.exact[k] = i
		}
	}
}

// find returns the first form that satisfies req under policy p.
func (e *LemmaEntry) find(p MatchPolicy, req AttributeSet) (WordForm, bool) {
	switch p {
	case MatchExact:
		if i, ok := e.exact[req.Key()]; ok {
			return e.Forms[i], true
		}
		return WordForm{}, false
	default:
		for _, f := range e.Forms {
			if f.Satisfies(req) {
				return f, true
			}
		}
		return WordForm{}, false
	}
}
