package submission

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openhie/xds-repository/internal/platform/xds"
)

func TestHTTPRegistryClient(t *testing.T) {
	ctx := context.Background()
	metadata := &xds.SubmitObjectsRequest{
		ExtrinsicObjects: []xds.ExtrinsicObject{{ID: "Document01"}},
	}

	t.Run("SuccessVerdict", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")

			var req xds.SubmitObjectsRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode forwarded metadata: %v", err)
			}
			if len(req.ExtrinsicObjects) != 1 {
				t.Errorf("expected 1 extrinsic object, got %d", len(req.ExtrinsicObjects))
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(xds.SuccessResponse())
		}))
		defer srv.Close()

		client := NewRegistryClient(srv.URL, "repo", "secret", 5*time.Second)
		verdict, err := client.Submit(ctx, metadata)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if !verdict.Succeeded() {
			t.Errorf("expected success verdict, got %+v", verdict)
		}
		if gotAuth == "" {
			t.Error("expected basic auth header on the registry request")
		}
	})

	t.Run("NoCredentialsNoAuthHeader", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(xds.SuccessResponse())
		}))
		defer srv.Close()

		client := NewRegistryClient(srv.URL, "", "", 5*time.Second)
		if _, err := client.Submit(ctx, metadata); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if gotAuth != "" {
			t.Errorf("expected no auth header, got %q", gotAuth)
		}
	})

	t.Run("HTTPErrorStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewRegistryClient(srv.URL, "", "", 5*time.Second)
		_, err := client.Submit(ctx, metadata)
		if !errors.Is(err, ErrRegistryUnreachable) {
			t.Fatalf("expected ErrRegistryUnreachable, got %v", err)
		}
	})

	t.Run("EmptyVerdict", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("{}"))
		}))
		defer srv.Close()

		client := NewRegistryClient(srv.URL, "", "", 5*time.Second)
		_, err := client.Submit(ctx, metadata)
		if !errors.Is(err, ErrRegistryUnreachable) {
			t.Fatalf("expected ErrRegistryUnreachable, got %v", err)
		}
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		client := NewRegistryClient("http://127.0.0.1:1", "", "", time.Second)
		_, err := client.Submit(ctx, metadata)
		if !errors.Is(err, ErrRegistryUnreachable) {
			t.Fatalf("expected ErrRegistryUnreachable, got %v", err)
		}
	})
}
