package textgen

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func TestHTTPGenerator_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		b, err := ioutil.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, "hello", jsoniter.Get(b, "prompt").ToString())

		w.Write([]byte(`{"text":"hi there"}`))
	}))
	defer srv.Close()

	g := NewHTTPGenerator(srv.URL, "test-key")

	text, err := g.Generate(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "hi there", text)
}

func TestHTTPGenerator_UpstreamFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewHTTPGenerator(srv.URL, "test-key")

	_, err := g.Generate(context.Background(), "hello")
	require.Error(t, err)
}
