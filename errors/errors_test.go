package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad input", http.StatusBadRequest)
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("INVALID_INPUT should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeTimeout, "timed out", http.StatusGatewayTimeout)
	if !err.Retryable {
		t.Error("TIMEOUT should be retryable")
	}
}

func TestAppError_UnsupportedFormat(t *testing.T) {
	err := UnsupportedFormat("audio.ogg", []string{".wav", ".mp3"})
	if err.Code != ErrCodeUnsupportedFormat {
		t.Errorf("expected UNSUPPORTED_FORMAT, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
	if err.Details["filename"] != "audio.ogg" {
		t.Errorf("expected filename detail, got %v", err.Details["filename"])
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := ExternalService("whisper sidecar", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected error string to contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := Validation("bad request").WithDetail("field", "file")
	if err.Details["field"] != "file" {
		t.Errorf("expected field detail, got %v", err.Details["field"])
	}
}

func TestAsAppError(t *testing.T) {
	appErr := Internal(fmt.Errorf("boom"))
	wrapped := fmt.Errorf("handler: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed")
	}
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}

	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected AsAppError to fail for plain error")
	}
}

func TestToResponse(t *testing.T) {
	err := MissingField("file")
	resp := err.ToResponse()
	if resp.Error.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", resp.Error.Code)
	}
	if resp.Error.Details["field"] != "file" {
		t.Errorf("expected field detail, got %v", resp.Error.Details["field"])
	}
}
