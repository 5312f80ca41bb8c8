//go:build !integration

package deploy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/api/v1/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, "secret")
	require.NoError(t, c.Ping())
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestPingUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := New(srv.URL, "bad").Ping()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestPushWorkflow(t *testing.T) {
	content := []byte("name: wf\nnodes:\n  - id: a\n    type: trigger.manual\n")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/projects/shop-sync/workflows/wf.yml", r.URL.Path)
		assert.Equal(t, "application/yaml", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, content, body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"abc123","name":"wf.yml","version":2}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret")
	deployed, err := c.PushWorkflow("shop-sync", "wf.yml", content)
	require.NoError(t, err)
	assert.Equal(t, "abc123", deployed.ID)
	assert.Equal(t, 2, deployed.Version)
}

func TestPushWorkflowRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := New(srv.URL, "secret")
	_, err := c.PushWorkflow("shop-sync", "wf.yml", []byte("nodes: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}
