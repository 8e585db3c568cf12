package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"cinema-tui/model"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(server *httptest.Server, opts ...Option) *Client {
	opts = append([]Option{WithBaseURL(server.URL)}, opts...)
	return NewClient(server.Client(), opts...)
}

func TestGetJSON_Non2xxReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := newTestClient(server)

	var out map[string]any
	err := client.getJSON(context.Background(), "/fail", &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetJSON_DoesNotRetryOnServerErrors(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("retry later"))
	}))
	defer server.Close()

	client := newTestClient(server)

	var out map[string]any
	if err := client.getJSON(context.Background(), "/retry", &out); err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestGetJSON_ErrorMessageFromJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_code":401,"message":"token expired"}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.GetProfile(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if !strings.HasSuffix(err.Error(), "token expired") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetJSON_SendsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		if r.Header.Get(requestIDHeader) == "" {
			t.Fatal("expected request id header")
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server, WithTokenSource(staticToken("tok")))

	var out map[string]any
	if err := client.getJSON(context.Background(), "/x", &out); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestGetJSON_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out map[string]any
	if err := client.getJSON(ctx, "/x", &out); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestDecodeData_Envelope(t *testing.T) {
	var user model.User
	if err := decodeData([]byte(`{"data":{"id":"u1","name":"Lan"}}`), &user); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if user.Id != "u1" || user.Name != "Lan" {
		t.Fatalf("unexpected user: %+v", user)
	}

	user = model.User{}
	if err := decodeData([]byte(`{"id":"u2","name":"Minh"}`), &user); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if user.Id != "u2" {
		t.Fatalf("unexpected user: %+v", user)
	}

	var tickets []model.Ticket
	if err := decodeData([]byte(`[{"id":"t1","seat_number":4}]`), &tickets); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(tickets) != 1 || tickets[0].SeatNumber != 4 {
		t.Fatalf("unexpected tickets: %+v", tickets)
	}
}

func TestGetProfile_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/profile" || r.Method != http.MethodGet {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"1","name":"Lan","email":"lan@example.com","phone":"0901234567"}}`))
	}))
	defer server.Close()

	user, err := newTestClient(server).GetProfile(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if user.Email != "lan@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUpdateProfile_SendsFullPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/profile" || r.Method != http.MethodPut {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		for _, key := range []string{"name", "phone", "date_of_birth", "gender"} {
			if _, ok := payload[key]; !ok {
				t.Fatalf("expected %q in payload %s", key, body)
			}
		}
		_, _ = w.Write([]byte(`{"data":true}`))
	}))
	defer server.Close()

	err := newTestClient(server).UpdateProfile(context.Background(), model.ProfileUpdate{Name: "Lan", Gender: "Female"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestLogin_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data":{"token":"tok","expiry":3600,"created_at":"2026-03-01T10:00:00Z"}}`))
	}))
	defer server.Close()

	account, err := newTestClient(server).Login(context.Background(), model.Credential{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if account.Token != "tok" || account.Expiry != 3600 {
		t.Fatalf("unexpected account: %+v", account)
	}
}

func TestLogin_RequiresCredentials(t *testing.T) {
	client := NewClient(nil)
	if _, err := client.Login(context.Background(), model.Credential{Email: " "}); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetTicketsForUser_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tickets/user" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data":[
  {"id":"t1","seat_number":3,"show":{"id":"7","date":"2024-05-02","startTime":"19:00","endTime":"21:00",
    "auditorium":{"name":"Room 1","cinema":{"name":"CGV"}},
    "movie":{"imdbID":"tt1","title":"Dune","rated":"PG-13","poster":"http://img/dune.jpg"}}}
]}`))
	}))
	defer server.Close()

	tickets, err := newTestClient(server).GetTicketsForUser(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(tickets) != 1 {
		t.Fatalf("expected 1 ticket, got %d", len(tickets))
	}
	show := tickets[0].ShowOrZero()
	if show.Id != 7 || show.CinemaName() != "CGV" || show.Movie.Title != "Dune" {
		t.Fatalf("unexpected show: %+v", show)
	}
}

func TestGetShow_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shows/12" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":12,"date":"2024-05-01"}`))
	}))
	defer server.Close()

	show, err := newTestClient(server).GetShow(context.Background(), "12")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if show.Id != 12 {
		t.Fatalf("unexpected show id: %d", show.Id)
	}
}

func TestGetMovie_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := newTestClient(server).GetMovie(context.Background(), "tt0")
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListMovies_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movies" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data":[{"imdbID":"tt1","title":"Dune"},{"imdbID":"tt2","title":"Arrival"}],"paging":{"page":1}}`))
	}))
	defer server.Close()

	movies, err := newTestClient(server).ListMovies(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}
}
