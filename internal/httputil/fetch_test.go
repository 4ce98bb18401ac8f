// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wfcatalog/pkg/types"
)

func TestFetch(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	body, err := Fetch(context.Background(), srv.URL, types.HTTPConfig{UserAgent: "wfcatalog/test"})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
	assert.Equal(t, "wfcatalog/test", gotUA)
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL, types.HTTPConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := Fetch(context.Background(), srv.URL, types.HTTPConfig{})
	require.Error(t, err)
}
