package airport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const datasetOK = `[
  {"code":"ORD","lat":"41.9786","lon":"-87.9048","name":"Chicago O'Hare International Airport","city":"Chicago","state":"Illinois","country":"United States"},
  {"code":"MDW","lat":"41.7868","lon":"-87.7522","name":"Chicago Midway Airport","city":"Chicago","state":"Illinois","country":"United States"}
]`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method: got %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(datasetOK))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	tbl, raw, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if tbl.Len() != 2 {
		t.Fatalf("len: got %d, want 2", tbl.Len())
	}
	if !tbl.Contains("MDW") {
		t.Error("expected MDW in fetched table")
	}
	if string(raw) != datasetOK {
		t.Error("raw body should be returned verbatim")
	}
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"server error", http.StatusInternalServerError, "boom", "unexpected status 500"},
		{"not found", http.StatusNotFound, "", "unexpected status 404"},
		{"bad json", http.StatusOK, "{", "parse airports"},
		{"no usable entries", http.StatusOK, `[{"code":"12"}]`, "no usable entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, _, err := NewClient(srv.URL).Fetch(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestFetchCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(datasetOK))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := NewClient(srv.URL).Fetch(ctx); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestNewClientDefaultURL(t *testing.T) {
	c := NewClient("")
	if c.url != DefaultURL {
		t.Errorf("url: got %q, want default", c.url)
	}
}
