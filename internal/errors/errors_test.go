package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCode(t *testing.T) {
	base := DataLoad("failed to read survey file", stderrors.New("no such file"))

	wrapped := Wrap(base, "render failed")

	assert.Equal(t, CodeDataLoad, GetCode(wrapped))
	assert.Contains(t, wrapped.Error(), "render failed")
	assert.Contains(t, wrapped.Error(), "no such file")
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrapf(stderrors.New("boom"), "step %d", 3)

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Equal(t, "step 3: boom", wrapped.Error())
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", InvalidInput("bad faf", nil))

	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}

func TestSentinelReachableThroughAppError(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := Wrap(DataLoad("load", fmt.Errorf("row 2: %w", sentinel)), "render")

	assert.ErrorIs(t, err, sentinel)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidInput("x", nil)))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("chart")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(DataLoad("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(stderrors.New("plain")))
}
