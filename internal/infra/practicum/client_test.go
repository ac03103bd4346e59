package practicum

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"homework_status_bot/internal/domain/failure"
)

func newTestClient(endpoint string) *Client {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(endpoint, "secret-token", 2*time.Second, logrus.NewEntry(log))
}

func TestFetchStatusesSuccess(t *testing.T) {
	from := time.Unix(1700000000, 0)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "OAuth secret-token" {
			t.Errorf("Authorization = %q, want %q", got, "OAuth secret-token")
		}
		if got := r.URL.Query().Get("from_date"); got != "1700000000" {
			t.Errorf("from_date = %q, want 1700000000", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"homeworks": [{"homework_name": "proj1", "status": "approved"}], "current_date": 1700000100}`)
	}))
	defer server.Close()

	payload, err := newTestClient(server.URL).FetchStatuses(context.Background(), from)
	if err != nil {
		t.Fatalf("FetchStatuses() unexpected error: %v", err)
	}

	body, ok := payload.(map[string]any)
	if !ok {
		t.Fatalf("FetchStatuses() returned %T, want map", payload)
	}
	list, ok := body["homeworks"].([]any)
	if !ok || len(list) != 1 {
		t.Errorf("homeworks = %v, want one entry", body["homeworks"])
	}
}

func TestFetchStatusesKeepsEndpointQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lang") != "ru" || r.URL.Query().Get("from_date") == "" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		io.WriteString(w, `{}`)
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL+"/?lang=ru").FetchStatuses(context.Background(), time.Now()); err != nil {
		t.Fatalf("FetchStatuses() unexpected error: %v", err)
	}
}

func TestFetchStatusesNonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchStatuses(context.Background(), time.Now())
	if err == nil {
		t.Fatal("FetchStatuses() expected error for 503")
	}
	if kind, _ := failure.KindOf(err); kind != failure.KindTransport {
		t.Errorf("error kind = %v, want %v", kind, failure.KindTransport)
	}
}

func TestFetchStatusesNotJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>maintenance</html>")
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchStatuses(context.Background(), time.Now())
	if kind, _ := failure.KindOf(err); kind != failure.KindParse {
		t.Errorf("FetchStatuses() error = %v, want parse error", err)
	}
}

func TestFetchStatusesNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url).FetchStatuses(context.Background(), time.Now())
	if kind, _ := failure.KindOf(err); kind != failure.KindTransport {
		t.Errorf("FetchStatuses() error = %v, want transport error", err)
	}
}
