package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON_Envelope(t *testing.T) {
	t.Run("with data", func(t *testing.T) {
		w := httptest.NewRecorder()

		JSON(w, http.StatusOK, "Data Book Fetched Successfully", map[string]int{"id": 1})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"Data Book Fetched Successfully","data":{"id":1}}`, w.Body.String())
	})

	t.Run("nil data is serialized as null, not omitted", func(t *testing.T) {
		w := httptest.NewRecorder()

		JSON(w, http.StatusNotFound, "Data not found", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Data not found","data":null}`, w.Body.String())
	})
}
