package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"token":"tok-1","username":"admin","expires_at":"2030-01-01T00:00:00Z"}}`))
	})
	mux.HandleFunc("/api/v1/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`{"data":[{"id":"65f0c0ffee","customer_name":"John Doe","customer_phone":"9876543210","total":550,"status":"pending","created_at":"2025-10-31T10:30:00Z"}]}`))
	})
	mux.HandleFunc("/api/v1/orders/65f0c0ffee/status", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"invalid status transition: pending to completed"}`))
	})
	mux.HandleFunc("/api/v1/menu", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":"p1","name":"Farmhouse Pizza","category":"Pizza","price":200,"stock":5}]}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd(viper.New(), &out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLogin(t *testing.T) {
	srv := fakeAPI(t)

	out, err := run(t, "s3cret\n", "login", "--server", srv.URL+"/api/v1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1\n", out)

	_, err = run(t, "wrong\n", "login", "--server", srv.URL+"/api/v1")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestLogin_SaveWritesConfig(t *testing.T) {
	srv := fakeAPI(t)
	cfg := filepath.Join(t.TempDir(), "cafectl.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("server: "+srv.URL+"/api/v1\n"), 0o600))

	_, err := run(t, "s3cret\n", "login", "--config", cfg, "--save")
	require.NoError(t, err)

	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tok-1")
}

func TestOrdersList(t *testing.T) {
	srv := fakeAPI(t)

	_, err := run(t, "", "orders", "list", "--server", srv.URL+"/api/v1")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	t.Setenv("CAFECTL_TOKEN", "tok-1")
	out, err := run(t, "", "orders", "list", "--server", srv.URL+"/api/v1", "--status", "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "550.00")
}

func TestOrdersStatus_SurfacesAPIError(t *testing.T) {
	srv := fakeAPI(t)
	t.Setenv("CAFECTL_TOKEN", "tok-1")

	_, err := run(t, "", "orders", "status", "65f0c0ffee", "completed", "--server", srv.URL+"/api/v1")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Contains(t, apiErr.Message, "invalid status transition")
}

func TestMenuList(t *testing.T) {
	srv := fakeAPI(t)

	out, err := run(t, "", "menu", "list", "--server", srv.URL+"/api/v1")
	require.NoError(t, err)
	assert.Contains(t, out, "Farmhouse Pizza")
	assert.Contains(t, out, "200.00")
}
