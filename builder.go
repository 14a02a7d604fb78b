package morphology

import (
	"iter"
	"strings"
)

// groupPhase is the position of the builder relative to lemma groups.
type groupPhase int

const (
	// phaseUngrouped: no group marker has been seen yet.
	phaseUngrouped groupPhase = iota
	// phaseAwaitingHead: a marker was seen; the next form line is a head.
	phaseAwaitingHead
	// phaseInGroup: forms are appended to the current lemma.
	phaseInGroup
)

// groupState is the accumulator threaded through the line loop.
type groupState struct {
	phase groupPhase
	lemma string
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineMarker
	lineForm
)

// classifyLine tells blank lines and group markers from form lines.
// A marker is a line made only of ASCII digits once surrounding
// whitespace is removed.
func classifyLine(line string) lineKind {
	t := strings.TrimSpace(line)
	if t == "" {
		return lineBlank
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return lineForm
		}
	}
	return lineMarker
}

// stepResult is the outcome of feeding one line to a groupState.
type stepResult struct {
	next groupState
	kind lineKind
	// form is set when kind == lineForm and belongs to next.lemma.
	form DictionaryLine
}

// step is the pure transition function of the grouping state machine.
// Blank lines never change the state, so a marker followed by blank lines
// still makes the next form line a head.
func (s groupState) step(n *normalizer, line string, singletons bool) (stepResult, error) {
	line = strings.TrimRight(line, "\r\n")
	res := stepResult{next: s, kind: classifyLine(line)}

	switch res.kind {
	case lineBlank:
		return res, nil
	case lineMarker:
		res.next = groupState{phase: phaseAwaitingHead}
		return res, nil
	}

	dl, err := parseFormLine(n, line)
	if err != nil {
		return res, err
	}
	res.form = dl

	switch s.phase {
	case phaseAwaitingHead:
		res.next = groupState{phase: phaseInGroup, lemma: dl.Word}
	case phaseUngrouped:
		if !singletons {
			return res, ErrUngroupedForm
		}
		// Every ungrouped form heads its own lemma; equal words merge.
		res.next = groupState{phase: phaseUngrouped, lemma: dl.Word}
	}
	return res, nil
}

// BuildStats summarizes one dictionary build.
type BuildStats struct {
	Lines   int
	Markers int
	Forms   int
	Blank   int
	Lemmas  int
}

type buildOptions struct {
	policy     MatchPolicy
	singletons bool
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

// WithMatchPolicy selects the matching policy of the built index.
// The default is MatchSubset.
func WithMatchPolicy(p MatchPolicy) BuildOption {
	return func(o *buildOptions) {
		o.policy = p
	}
}

// WithUngroupedSingletons makes a form line that precedes every group
// marker the head of its own lemma instead of failing with ErrUngroupedForm.
func WithUngroupedSingletons() BuildOption {
	return func(o *buildOptions) {
		o.singletons = true
	}
}

// Build consumes lines exactly once and groups them into a LemmaIndex.
//
// Input grammar: blank lines are ignored, a line of digits is a group
// marker, any other line is "WORD<TAB>POS ATTR,ATTR,...". The first form
// line after a marker is the lemma head; it and every following form
// line up to the next marker are stored under the head, in file order.
// Groups whose heads normalize to the same key are merged.
//
// The first malformed line aborts the build; no partial index is
// returned. The error is a *LineError wrapping ErrMalformedLine or
// ErrUngroupedForm.
func Build(lines iter.Seq[string], opts ...BuildOption) (*LemmaIndex, BuildStats, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	n := newNormalizer()
	x := newLemmaIndex(o.policy)

	var (
		st    groupState
		stats BuildStats
	)
	for line := range lines {
		stats.Lines++
		res, err := st.step(n, line, o.singletons)
		if err != nil {
			return nil, stats, &LineError{Line: stats.Lines, Text: line, Err: err}
		}
		switch res.kind {
		case lineBlank:
			stats.Blank++
		case lineMarker:
			stats.Markers++
		case lineForm:
			stats.Forms++
			x.addForm(res.next.lemma, res.form)
		}
		st = res.next
	}

	x.seal()
	stats.Lemmas = x.Len()
	return x, stats, nil
}
