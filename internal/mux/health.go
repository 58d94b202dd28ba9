package mux

import "net/http"

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	WheelRank string `json:"wheelRank"`
}

// getHealth reports the version and the wheel rank used for scoring
func (m *Mux) getHealth() http.HandlerFunc {
	payload := healthResponse{
		Status:    "OK",
		Version:   m.version,
		WheelRank: m.evaluator.WheelRank().String(),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}
