package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/bmizerany/assert"
)

func TestHealthHandler(t *testing.T) {
	ts := httptest.NewServer(NewMux("v1.2.3"))
	defer ts.Close()

	var expects healthResponse
	resp := assertGetWithResp(t, ts, "/health", &expects, 200)
	assert.Equal(t, "OK", expects.Status)
	assert.Equal(t, "v1.2.3", expects.Version)
	assert.Equal(t, "five", expects.WheelRank)
	assert.NotEqual(t, "", resp.Header.Get(requestIDHeader))
}
