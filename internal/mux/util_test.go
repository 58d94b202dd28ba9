package mux

import (
	"errors"
	"fmt"
	"handstrength-server/pkg/poker"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_remoteAddr(t *testing.T) {
	r := &http.Request{RemoteAddr: "127.0.0.1:5000"}
	assert.Equal(t, "127.0.0.1", remoteAddr(r))

	r.RemoteAddr = "[::1]:5000"
	assert.Equal(t, "[::1]", remoteAddr(r))

	r.RemoteAddr = "localhost"
	assert.Equal(t, "localhost", remoteAddr(r))
}

func Test_writeMaybeBadRequestError(t *testing.T) {
	w := httptest.NewRecorder()
	writeMaybeBadRequestError(w, fmt.Errorf("hand 2: %w", poker.ErrInvalidHandSize))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"hand 2: size of hand must be 5","statusCode":400}`, w.Body.String())

	w = httptest.NewRecorder()
	writeMaybeBadRequestError(w, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error","statusCode":500}`, w.Body.String())
}
