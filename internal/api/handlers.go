package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/6o6p/morphology"
)

// maxBodyBytes caps the size of a morph request body.
const maxBodyBytes = 1 << 20

// Handlers serves the API endpoints from one Morpher.
type Handlers struct {
	morpher *morphology.Morpher
	stats   morphology.BuildStats
}

// NewHandlers returns handlers backed by m; stats is reported by /api/stats.
func NewHandlers(m *morphology.Morpher, stats morphology.BuildStats) *Handlers {
	return &Handlers{morpher: m, stats: stats}
}

// Morph handles POST /api/morph.
func (h *Handlers) Morph(w http.ResponseWriter, r *http.Request) {
	var body morphRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "body must be JSON with a 'sentence' field")
		return
	}

	if !body.Strict {
		writeJSON(w, http.StatusOK, morphResponse{
			Sentence: body.Sentence,
			Result:   h.morpher.Morph(body.Sentence),
		})
		return
	}

	result, err := h.morpher.MorphStrict(body.Sentence)
	if errors.Is(err, morphology.ErrMalformedToken) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, morphResponse{Sentence: body.Sentence, Result: result})
}

// Paradigm handles GET /api/paradigm?word=.
func (h *Handlers) Paradigm(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	p := h.morpher.Paradigm(word)
	if p == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("lemma %q not found", word))
		return
	}
	writeJSON(w, http.StatusOK, paradigmResponse{Lemma: p.Lemma, Forms: toFormsJSON(p.Forms)})
}

// Lemmatize handles GET /api/lemmatize?form=.
func (h *Handlers) Lemmatize(w http.ResponseWriter, r *http.Request) {
	form := r.URL.Query().Get("form")
	if form == "" {
		writeError(w, http.StatusBadRequest, "missing 'form' query parameter")
		return
	}
	entries := h.morpher.Lemmatize(form)
	lemmas := make([]string, 0, len(entries))
	for _, e := range entries {
		lemmas = append(lemmas, e.Key)
	}
	status := http.StatusOK
	if len(lemmas) == 0 {
		status = http.StatusNotFound
	}
	writeJSON(w, status, lemmatizeResponse{Form: morphology.Normalize(form), Lemmas: lemmas})
}

// Stats handles GET /api/stats.
func (h *Handlers) Stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statsResponse{
		Policy:  h.morpher.Index().Policy().String(),
		Lines:   h.stats.Lines,
		Markers: h.stats.Markers,
		Forms:   h.stats.Forms,
		Lemmas:  h.stats.Lemmas,
	})
}

// Health handles GET /healthz.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
