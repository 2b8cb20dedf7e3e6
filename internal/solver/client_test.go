package solver_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/solver"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_GetSolution_Success(t *testing.T) {
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("bad content-type: %s", r.Header.Get("Content-Type"))
		}

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"solution": "R U R' F'"})
	}))
	defer srv.Close()

	client := solver.NewClient(srv.Client(), srv.URL, discardLogger())

	got, err := client.GetSolution(context.Background(), gocube.SolvedFacelets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "R U R' F'" {
		t.Errorf("unexpected solution: %q", got)
	}

	if gotReq["state"] != gocube.SolvedFacelets {
		t.Errorf("request state: %v", gotReq["state"])
	}
	if len(gotReq) != 1 {
		t.Errorf("request should carry a single field, got %v", gotReq)
	}
}

func TestClient_GetSolution_ServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{ "message": "bad state" }`))
	}))
	defer srv.Close()

	client := solver.NewClient(srv.Client(), srv.URL, discardLogger())

	_, err := client.GetSolution(context.Background(), gocube.SolvedFacelets)
	if err == nil {
		t.Fatal("expected error for upstream 500, got nil")
	}
	if err.Error() != "bad state" {
		t.Errorf("expected message %q, got %q", "bad state", err.Error())
	}

	var se *solver.ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ServerError, got %T", err)
	}
	if se.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", se.Status)
	}
}

func TestClient_GetSolution_ServerErrorUnparsableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>gateway</html>"))
	}))
	defer srv.Close()

	client := solver.NewClient(srv.Client(), srv.URL, discardLogger())

	_, err := client.GetSolution(context.Background(), gocube.SolvedFacelets)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "server returned an error" {
		t.Errorf("expected generic server error, got %q", err.Error())
	}
}

func TestClient_GetSolution_ServerErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	client := solver.NewClient(srv.Client(), srv.URL, discardLogger())

	_, err := client.GetSolution(context.Background(), gocube.SolvedFacelets)
	if err == nil || err.Error() != "solver returned status 400" {
		t.Errorf("expected status message, got %v", err)
	}
}

func TestClient_GetSolution_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := solver.NewClient(&http.Client{}, url, discardLogger())

	_, err := client.GetSolution(context.Background(), gocube.SolvedFacelets)
	if !errors.Is(err, solver.ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
	if err.Error() != solver.ErrUnreachable.Error() {
		t.Errorf("expected connection message, got %q", err.Error())
	}
}

func TestClient_GetSolution_InvalidFormat(t *testing.T) {
	bodies := []string{
		`{ "solution": 123 }`,
		`{ "answer": "R U" }`,
		`{ "solution": "" }`,
		`not json`,
	}

	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}))

		client := solver.NewClient(srv.Client(), srv.URL, discardLogger())
		_, err := client.GetSolution(context.Background(), gocube.SolvedFacelets)
		srv.Close()

		if !errors.Is(err, solver.ErrInvalidFormat) {
			t.Errorf("body %s: expected ErrInvalidFormat, got %v", body, err)
		}
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{solver.ErrInvalidFormat, solver.KindInvalidFormat},
		{&solver.ServerError{Status: 500, Message: "bad state"}, solver.KindServer},
		{context.Canceled, solver.KindOther},
	}
	for _, tt := range tests {
		if got := solver.Kind(tt.err); got != tt.want {
			t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
