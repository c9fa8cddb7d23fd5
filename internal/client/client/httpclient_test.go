package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newClient(t *testing.T, url string) *HTTPClient {
	t.Helper()
	c, err := NewGateKeeperClientService(url)
	if err != nil {
		t.Fatalf("NewGateKeeperClientService error: %v", err)
	}
	return c
}

func TestLogin_StoresTokenAndSendsBearer(t *testing.T) {
	t.Parallel()

	var gotAuth string

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/user/login", func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("login body decode: %v", err)
		}
		if req.Email != "alice@example.org" || req.Password != "secret" {
			t.Errorf("unexpected login request: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(loginResponse{AccessToken: "tok123"})
	})
	mux.HandleFunc("GET /api/user/info", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(accountResponse{ID: "u-1", Email: "alice@example.org", Name: "Alice"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newClient(t, srv.URL)
	ctx := context.Background()

	token, err := c.Login(ctx, "alice@example.org", []byte("secret"))
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if token != "tok123" {
		t.Fatalf("unexpected token: %q", token)
	}

	acc, err := c.Info(ctx)
	if err != nil {
		t.Fatalf("Info error: %v", err)
	}
	if acc.ID != "u-1" || acc.Email != "alice@example.org" || acc.Name != "Alice" {
		t.Fatalf("unexpected account: %+v", acc)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("expected bearer header from login, got %q", gotAuth)
	}
}

func TestLogin_UnauthorizedMapsToSentinel(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)

	_, err := c.Login(context.Background(), "alice@example.org", []byte("wrong"))
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRegister_SendsBody(t *testing.T) {
	t.Parallel()

	var got registerRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/user/register" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("register body decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(accountResponse{ID: "u-1", Email: got.Email, Name: got.Name})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)

	err := c.Register(context.Background(), "bob@example.org", "Bob", []byte("pw"))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if got.Email != "bob@example.org" || got.Name != "Bob" || got.Password != "pw" {
		t.Fatalf("unexpected register request: %+v", got)
	}
}

func TestRegister_RejectedMapsToSentinel(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)

	err := c.Register(context.Background(), "bob@example.org", "Bob", []byte("pw"))
	if !errors.Is(err, ErrRegistrationRejected) {
		t.Fatalf("expected ErrRegistrationRejected, got %v", err)
	}
}

func TestPing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  string
		wantErr error
	}{
		{name: "ok", status: "ok", wantErr: nil},
		{name: "degraded", status: "degraded", wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(pingResponse{Status: tt.status})
			}))
			defer srv.Close()

			c := newClient(t, srv.URL)

			err := c.Ping(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Ping: want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestServerDown_MapsToUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	c := newClient(t, srv.URL)

	if err := c.Ping(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if _, err := c.Login(context.Background(), "a@b", []byte("x")); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestInfo_ServerErrorMapsToUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)

	if _, err := c.Info(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
