package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *BybitClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewBybitClient(server.URL, 2*time.Second, 0, zap.NewNop())
}

func TestBybitClient_HasOptions_InstrumentsListed(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v5/market/instruments-info", r.URL.Path)
		assert.Equal(t, "option", r.URL.Query().Get("category"))
		assert.Equal(t, "BTC", r.URL.Query().Get("baseCoin"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"retCode":0,"retMsg":"OK","result":{"list":[{"symbol":"BTC-30JUN24-45000-C"}]}}`))
	})

	assert.True(t, c.HasOptions(context.Background(), "btc"))
}

func TestBybitClient_HasOptions_EmptyList(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"retCode":0,"retMsg":"OK","result":{"list":[]}}`))
	})

	assert.False(t, c.HasOptions(context.Background(), "XRP"))
}

func TestBybitClient_HasOptions_ErrorReturnCode(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"retCode":10001,"retMsg":"params error","result":{}}`))
	})

	assert.False(t, c.HasOptions(context.Background(), "XRP"))
}

func TestBybitClient_HasOptions_HTTPError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	assert.False(t, c.HasOptions(context.Background(), "BTC"))
}

func TestBybitClient_HasOptions_Unreachable(t *testing.T) {
	t.Parallel()

	// Point at a server that is already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewBybitClient(server.URL, time.Second, 0, zap.NewNop())
	assert.False(t, c.HasOptions(context.Background(), "BTC"))
}

func TestBybitClient_HasOptions_RetriesTransientFailure(t *testing.T) {
	t.Parallel()

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"retCode":0,"retMsg":"OK","result":{"list":[{"symbol":"ETH-27SEP24-2800-C"}]}}`))
	}))
	defer server.Close()

	c := NewBybitClient(server.URL, 2*time.Second, 2, zap.NewNop())

	assert.True(t, c.HasOptions(context.Background(), "ETH"))
	assert.Equal(t, 2, attempts)
}
