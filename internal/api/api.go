// Package api exposes a Morpher as a JSON REST API.
//
// Endpoints:
//
//	POST /api/morph        body: {"sentence":"...", "strict":false}
//	GET  /api/paradigm?word=<lemma>
//	GET  /api/lemmatize?form=<word>
//	GET  /api/stats
//	GET  /healthz
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/6o6p/morphology"
)

// ---- JSON response types ------------------------------------------------

type formJSON struct {
	Surface    string   `json:"surface"`
	POS        string   `json:"pos"`
	POSName    string   `json:"pos_name"`
	Attributes []string `json:"attributes"`
}

type morphRequest struct {
	Sentence string `json:"sentence"`
	Strict   bool   `json:"strict"`
}

type morphResponse struct {
	Sentence string `json:"sentence"`
	Result   string `json:"result"`
}

type paradigmResponse struct {
	Lemma string     `json:"lemma"`
	Forms []formJSON `json:"forms"`
}

type lemmatizeResponse struct {
	Form   string   `json:"form"`
	Lemmas []string `json:"lemmas"`
}

type statsResponse struct {
	Policy  string `json:"policy"`
	Lines   int    `json:"lines"`
	Markers int    `json:"markers"`
	Forms   int    `json:"forms"`
	Lemmas  int    `json:"lemmas"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toFormsJSON(forms []morphology.WordForm) []formJSON {
	out := make([]formJSON, 0, len(forms))
	for _, f := range forms {
		out = append(out, formJSON{
			Surface:    f.Surface,
			POS:        string(f.POS()),
			POSName:    f.POS().Name(),
			Attributes: f.Attributes,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
