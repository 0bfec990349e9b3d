package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	t.Run("successful write", func(t *testing.T) {
		w := httptest.NewRecorder()
		data := map[string]string{"message": "test"}

		err := WriteJSON(w, http.StatusOK, data)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response map[string]string
		err = json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, "test", response["message"])
	})

	t.Run("nil data", func(t *testing.T) {
		w := httptest.NewRecorder()

		err := WriteJSON(w, http.StatusNoContent, nil)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestNewProblem(t *testing.T) {
	p := NewProblem(http.StatusBadRequest, "the name must be upper case!", "/customer/josh")

	assert.Equal(t, "about:blank", p.Type)
	assert.Equal(t, "Bad Request", p.Title)
	assert.Equal(t, 400, p.Status)
	assert.Equal(t, "the name must be upper case!", p.Detail)
	assert.Equal(t, "/customer/josh", p.Instance)
}

func TestWriteProblem(t *testing.T) {
	t.Run("full problem", func(t *testing.T) {
		w := httptest.NewRecorder()

		err := WriteProblem(w, NewProblem(http.StatusBadRequest, "bad input", "/customer/x"))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ProblemContentType, w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{
			"type": "about:blank",
			"title": "Bad Request",
			"status": 400,
			"detail": "bad input",
			"instance": "/customer/x"
		}`, w.Body.String())
	})

	t.Run("optional members omitted", func(t *testing.T) {
		w := httptest.NewRecorder()

		err := WriteProblem(w, NewProblem(http.StatusInternalServerError, "", ""))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{
			"type": "about:blank",
			"title": "Internal Server Error",
			"status": 500
		}`, w.Body.String())
	})
}
