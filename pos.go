package morphology

// PartOfSpeech is an OpenCorpora part-of-speech tag, normalized to upper case.
type PartOfSpeech string

const (
	POSNoun            PartOfSpeech = "NOUN"
	POSAdjectiveFull   PartOfSpeech = "ADJF"
	POSAdjectiveShort  PartOfSpeech = "ADJS"
	POSComparative     PartOfSpeech = "COMP"
	POSVerb            PartOfSpeech = "VERB"
	POSInfinitive      PartOfSpeech = "INFN"
	POSParticipleFull  PartOfSpeech = "PRTF"
	POSParticipleShort PartOfSpeech = "PRTS"
	POSGerund          PartOfSpeech = "GRND"
	POSNumeral         PartOfSpeech = "NUMR"
	POSAdverb          PartOfSpeech = "ADVB"
	POSPronoun         PartOfSpeech = "NPRO"
	POSPredicative     PartOfSpeech = "PRED"
	POSPreposition     PartOfSpeech = "PREP"
	POSConjunction     PartOfSpeech = "CONJ"
	POSParticle        PartOfSpeech = "PRCL"
	POSInterjection    PartOfSpeech = "INTJ"
	POSUnknown         PartOfSpeech = ""
)

var posNames = map[PartOfSpeech]string{
	POSNoun:            "noun",
	POSAdjectiveFull:   "adjective",
	POSAdjectiveShort:  "short adjective",
	POSComparative:     "comparative",
	POSVerb:            "verb",
	POSInfinitive:      "infinitive",
	POSParticipleFull:  "participle",
	POSParticipleShort: "short participle",
	POSGerund:          "gerund",
	POSNumeral:         "numeral",
	POSAdverb:          "adverb",
	POSPronoun:         "pronoun",
	POSPredicative:     "predicative",
	POSPreposition:     "preposition",
	POSConjunction:     "conjunction",
	POSParticle:        "particle",
	POSInterjection:    "interjection",
}

// Name returns a human-readable name, or "unknown" for tags outside the
// OpenCorpora part-of-speech inventory.
func (p PartOfSpeech) Name() string {
	if n, ok := posNames[p]; ok {
		return n
	}
	return "unknown"
}

// IsKnown reports whether p is one of the OpenCorpora part-of-speech tags.
func (p PartOfSpeech) IsKnown() bool {
	_, ok := posNames[p]
	return ok
}
