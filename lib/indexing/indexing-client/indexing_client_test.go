package indexingclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/balance", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"balance":1250}`))
	})
	mux.HandleFunc("/projects", func(w http.ResponseWriter, r *http.Request) {
		var payload submitRequest
		if r.Method != http.MethodPost || json.NewDecoder(r.Body).Decode(&payload) != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(SubmitResult{ProjectID: payload.Name, Accepted: len(payload.URLs)})
	})
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(apiKeyHeader) != "cle" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		mux.ServeHTTP(w, r)
	}))
}

func TestClient(t *testing.T) {
	server := newServer()
	defer server.Close()
	client := NewClient(server.URL+"/", "cle")
	ctx := context.Background()

	t.Run(`status`, func(t *testing.T) {
		status, err := client.Status(ctx)
		require.Nil(t, err)
		require.Equal(t, "ok", status)
	})
	t.Run(`balance`, func(t *testing.T) {
		balance, err := client.Balance(ctx)
		require.Nil(t, err)
		require.Equal(t, int64(1250), balance)
	})
	t.Run(`submit`, func(t *testing.T) {
		result, err := client.Submit(ctx, "Indexation_2024-05-02", []string{"https://solaire.fr/photovoltaique/lyon-69001"})
		require.Nil(t, err)
		require.Equal(t, SubmitResult{ProjectID: "Indexation_2024-05-02", Accepted: 1}, result)
	})
	t.Run(`rejected key`, func(t *testing.T) {
		_, err := NewClient(server.URL, "autre").Balance(ctx)
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "401")
	})
}
