package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/nba-stats/internal/usecase"
)

func TestWriteSuccess_RawBody(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, []map[string]string{{"player_name": "Kobe Bryant"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}

	var body []map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if len(body) != 1 || body[0]["player_name"] != "Kobe Bryant" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestWriteError_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: player ids are required", usecase.ErrInvalidInput), true)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["message"].(string); got != "invalid input: player ids are required" {
		t.Fatalf("unexpected message %q", got)
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error detail on a 400")
	}
}

func TestWriteError_StoreFailureDetail(t *testing.T) {
	storeErr := errors.New(`pq: column "bogus" does not exist`)

	tests := []struct {
		name   string
		expose bool
		want   string
	}{
		{name: "exposed", expose: true, want: storeErr.Error()},
		{name: "hidden", expose: false, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, storeErr, tt.expose)

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("expected status 500, got %d", rec.Code)
			}
			var body errorResponse
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			if body.Message != internalErrorMessage {
				t.Fatalf("unexpected message %q", body.Message)
			}
			if body.Error != tt.want {
				t.Fatalf("error detail = %q, want %q", body.Error, tt.want)
			}
		})
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid", err: fmt.Errorf("%w: bad", usecase.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("get player: %w", usecase.ErrNotFound), want: http.StatusNotFound},
		{name: "unavailable", err: usecase.ErrDependencyUnavailable, want: http.StatusServiceUnavailable},
		{name: "deadline", err: fmt.Errorf("list players: %w", context.DeadlineExceeded), want: http.StatusGatewayTimeout},
		{name: "other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapError(context.Background(), tt.err).HTTPStatus; got != tt.want {
				t.Fatalf("mapError status = %d, want %d", got, tt.want)
			}
		})
	}
}
