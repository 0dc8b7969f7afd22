package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/scorebets/scorebets/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantReason string
		wantStatus string
	}{
		{name: "invalid input", err: usecase.ErrInvalidInput, wantCode: http.StatusBadRequest, wantReason: "invalidInput", wantStatus: "INVALID_ARGUMENT"},
		{name: "bet closed", err: usecase.ErrBetClosed, wantCode: http.StatusUnprocessableEntity, wantReason: "betClosed", wantStatus: "FAILED_PRECONDITION"},
		{name: "duplicate bet", err: usecase.ErrDuplicateBet, wantCode: http.StatusConflict, wantReason: "duplicateBet", wantStatus: "ALREADY_EXISTS"},
		{name: "not found", err: usecase.ErrNotFound, wantCode: http.StatusNotFound, wantReason: "notFound", wantStatus: "NOT_FOUND"},
		{name: "unauthorized", err: usecase.ErrUnauthorized, wantCode: http.StatusUnauthorized, wantReason: "unauthorized", wantStatus: "UNAUTHENTICATED"},
		{name: "dependency unavailable", err: usecase.ErrDependencyUnavailable, wantCode: http.StatusServiceUnavailable, wantReason: "dependencyUnavailable", wantStatus: "UNAVAILABLE"},
		{name: "unknown error", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantReason: "internalError", wantStatus: "INTERNAL"},
		{name: "wrapped error", err: fmt.Errorf("placing bet: %w", usecase.ErrDuplicateBet), wantCode: http.StatusConflict, wantReason: "duplicateBet", wantStatus: "ALREADY_EXISTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapError(context.Background(), tt.err)
			if mapped.HTTPStatus != tt.wantCode || mapped.Reason != tt.wantReason || mapped.Status != tt.wantStatus {
				t.Fatalf("mapError(%v)=%+v want (%d,%q,%q)",
					tt.err, mapped, tt.wantCode, tt.wantReason, tt.wantStatus)
			}
		})
	}
}

func TestWriteError_DomainAndMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: match 3 already kicked off", usecase.ErrBetClosed))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	items, ok := errorObj["errors"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected a single error item, got %v", errorObj["errors"])
	}
	item, _ := items[0].(map[string]any)
	if got, _ := item["domain"].(string); got != "scorebets" {
		t.Fatalf("expected error domain scorebets, got %v", item["domain"])
	}
	if got, _ := item["reason"].(string); got != "betClosed" {
		t.Fatalf("expected reason betClosed, got %v", item["reason"])
	}
}
