package morphology

import "slices"

// Paradigm is the full set of forms of one lemma, in dictionary order.
type Paradigm struct {
	Lemma string
	Forms []WordForm
}

// Paradigm returns every form listed under the lemma whose head is word,
// or nil if the index has no such lemma. The result is a copy.
func (x *LemmaIndex) Paradigm(word string) *Paradigm {
	e := x.Lemma(word)
	if e == nil {
		return nil
	}
	return &Paradigm{
		Lemma: e.Key,
		Forms: slices.Clone(e.Forms),
	}
}

// ByPOS returns the forms whose part of speech is pos.
func (p *Paradigm) ByPOS(pos PartOfSpeech) []WordForm {
	var out []WordForm
	for _, f := range p.Forms {
		if f.POS() == pos {
			out = append(out, f)
		}
	}
	return out
}
