package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"annotext/internal/analysis"
	"annotext/internal/config"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	reg := analysis.NewRegistry()
	f, err := config.Parse([]byte(`
analyzers:
  - name: annotated
    tokenizer: whitespace
    filters:
      - type: annotation
`))
	require.NoError(t, err)
	require.NoError(t, f.Build(reg))

	mux := http.NewServeMux()
	NewHandler(reg, nil).RegisterRoutes(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	return rr, decoded
}

func TestListAnalyzers(t *testing.T) {
	mux := newTestMux(t)

	rr, body := doJSON(t, mux, http.MethodGet, "/analyzers", "")
	require.Equal(t, http.StatusOK, rr.Code)

	raw, ok := body["analyzers"].([]interface{})
	require.True(t, ok)

	names := make([]string, len(raw))
	for i, v := range raw {
		names[i] = v.(string)
	}
	assert.Equal(t, []string{"annotated", "keyword", "standard", "whitespace"}, names)
}

func TestAnalyze_Annotated(t *testing.T) {
	mux := newTestMux(t)

	rr, body := doJSON(t, mux, http.MethodPost, "/analyze",
		`{"analyzer": "annotated", "text": "Salzburg[city;Austria] rocks"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "annotated", body["analyzer"])

	raw, ok := body["tokens"].([]interface{})
	require.True(t, ok)
	require.Len(t, raw, 4)

	type tok struct {
		term  string
		typ   string
		incr  float64
		start float64
		end   float64
	}
	got := make([]tok, len(raw))
	for i, v := range raw {
		m := v.(map[string]interface{})
		got[i] = tok{
			term:  m["term"].(string),
			typ:   m["type"].(string),
			incr:  m["position_increment"].(float64),
			start: m["start_byte"].(float64),
			end:   m["end_byte"].(float64),
		}
	}

	assert.Equal(t, tok{"Salzburg", "word", 1, 0, 22}, got[0])
	assert.Equal(t, tok{"[Austria]", "synonym", 0, 0, 22}, got[1])
	assert.Equal(t, tok{"[city]", "synonym", 0, 0, 22}, got[2])
	assert.Equal(t, tok{"rocks", "word", 1, 23, 28}, got[3])
}

func TestAnalyze_DefaultAnalyzer(t *testing.T) {
	mux := newTestMux(t)

	rr, body := doJSON(t, mux, http.MethodPost, "/analyze", `{"text": "Hello World"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "standard", body["analyzer"])

	raw := body["tokens"].([]interface{})
	require.Len(t, raw, 2)
	assert.Equal(t, "hello", raw[0].(map[string]interface{})["term"])
}

func TestAnalyze_Errors(t *testing.T) {
	mux := newTestMux(t)

	t.Run("unknown analyzer", func(t *testing.T) {
		rr, body := doJSON(t, mux, http.MethodPost, "/analyze", `{"analyzer": "nope", "text": "x"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errObj := body["error"].(map[string]interface{})
		assert.True(t, strings.Contains(errObj["message"].(string), "unknown analyzer"))
	})

	t.Run("bad body", func(t *testing.T) {
		rr, _ := doJSON(t, mux, http.MethodPost, "/analyze", `{"text": `)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
