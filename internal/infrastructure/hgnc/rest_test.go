package hgnc

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famplex/famplex/internal/domain/ports"
)

const testBaseURL = "https://hgnc.test"

func docsResponse(docs string) string {
	return `{"responseHeader":{"status":0},"response":{"numFound":1,"start":0,"docs":[` + docs + `]}}`
}

func newTestResolver(t *testing.T) *RESTResolver {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
	return NewRESTResolver(testBaseURL, 5*time.Second, nil)
}

func TestRESTResolver_Symbol(t *testing.T) {
	resolver := newTestResolver(t)
	httpmock.RegisterResponder("GET", testBaseURL+"/fetch/hgnc_id/3236",
		httpmock.NewStringResponder(http.StatusOK, docsResponse(`{"hgnc_id":"HGNC:3236","symbol":"EGFR"}`)))

	symbol, err := resolver.Symbol(context.Background(), "HGNC:3236")
	require.NoError(t, err)
	assert.Equal(t, "EGFR", symbol)

	// Second call is answered from memory.
	symbol, err = resolver.Symbol(context.Background(), "3236")
	require.NoError(t, err)
	assert.Equal(t, "EGFR", symbol)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestRESTResolver_ID(t *testing.T) {
	resolver := newTestResolver(t)
	httpmock.RegisterResponder("GET", testBaseURL+"/fetch/symbol/MAPK1",
		httpmock.NewStringResponder(http.StatusOK, docsResponse(`{"hgnc_id":"HGNC:6871","symbol":"MAPK1"}`)))

	id, err := resolver.ID(context.Background(), "MAPK1")
	require.NoError(t, err)
	assert.Equal(t, "6871", id)
}

func TestRESTResolver_NotFound(t *testing.T) {
	resolver := newTestResolver(t)
	httpmock.RegisterResponder("GET", testBaseURL+"/fetch/hgnc_id/0",
		httpmock.NewStringResponder(http.StatusOK, `{"response":{"numFound":0,"docs":[]}}`))

	_, err := resolver.Symbol(context.Background(), "0")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	_, err = resolver.Symbol(context.Background(), "0")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestRESTResolver_Errors(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
	}{
		{name: "server error", responder: httpmock.NewStringResponder(http.StatusInternalServerError, "")},
		{name: "bad json", responder: httpmock.NewStringResponder(http.StatusOK, "<html>")},
		{name: "missing docs", responder: httpmock.NewStringResponder(http.StatusOK, `{"response":{}}`)},
		{name: "transport", responder: httpmock.NewErrorResponder(assert.AnError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := newTestResolver(t)
			httpmock.RegisterResponder("GET", testBaseURL+"/fetch/hgnc_id/1", tt.responder)

			_, err := resolver.Symbol(context.Background(), "1")
			require.Error(t, err)
			assert.NotErrorIs(t, err, ports.ErrNotFound)
		})
	}
}

func TestRESTResolver_Probe(t *testing.T) {
	resolver := newTestResolver(t)
	httpmock.RegisterResponder("GET", testBaseURL+"/info", httpmock.NewStringResponder(http.StatusOK, `{}`))
	assert.NoError(t, resolver.Probe(context.Background()))

	httpmock.Reset()
	httpmock.RegisterResponder("GET", testBaseURL+"/info", httpmock.NewStringResponder(http.StatusServiceUnavailable, ""))
	assert.Error(t, resolver.Probe(context.Background()))
}
