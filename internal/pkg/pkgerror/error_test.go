package pkgerror

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestConstructors(t *testing.T) {
	root := errors.New("root cause")

	tests := []struct {
		name   string
		err    error
		msg    string
		typ    Type
		code   Code
		status int
	}{
		{"server", NewServer(root), "Error processing the file", TypeServer, CodeInternal, http.StatusInternalServerError},
		{"bad request", NewBadRequest(root, "Only .arff files are allowed"), "Only .arff files are allowed", TypeValidation, CodeBadRequest, http.StatusBadRequest},
		{"too large", NewTooLarge(root), "File is too large", TypeValidation, CodeTooLarge, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gerr *Error
			if !errors.As(tt.err, &gerr) {
				t.Fatalf("expected *Error, got %T", tt.err)
			}
			if !errors.Is(tt.err, root) {
				t.Fatalf("expected cause to be wrapped")
			}
			if gerr.Error() != "root cause" {
				t.Fatalf("Error() should report the cause, got %q", gerr.Error())
			}
			if gerr.Msg() != tt.msg || gerr.Type() != tt.typ || gerr.Code() != tt.code {
				t.Fatalf("unexpected fields: %s", gerr)
			}
			if got := gerr.StatusCode(); got != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, got)
			}
		})
	}
}

func TestErrorFallbackMessages(t *testing.T) {
	if got := newError(nil, "", TypeValidation, CodeBadRequest).Error(); got != "Invalid request" {
		t.Fatalf("unexpected validation fallback: %q", got)
	}
	if got := newError(nil, "", TypeServer, CodeInternal).Error(); got != "Internal error" {
		t.Fatalf("unexpected server fallback: %q", got)
	}
	if got := NewBadRequest(nil, "No file provided").Error(); got != "No file provided" {
		t.Fatalf("expected message when there is no cause, got %q", got)
	}
}

func TestStrings(t *testing.T) {
	if got := Type(99).String(); got != "ERROR_TYPE_UNKNOWN" {
		t.Fatalf("unexpected unknown type: %q", got)
	}
	if got := Code(99).String(); got != "ERROR_CODE_INTERNAL" {
		t.Fatalf("unexpected unknown code: %q", got)
	}
	if got := (&Error{code: Code(99)}).StatusCode(); got != http.StatusInternalServerError {
		t.Fatalf("unknown code should map to 500, got %d", got)
	}

	str := NewTooLarge(errors.New("limit")).(*Error).String()
	for _, want := range []string{"ERROR_TYPE_VALIDATION", "ERROR_CODE_TOO_LARGE", "File is too large", "limit"} {
		if !strings.Contains(str, want) {
			t.Fatalf("expected %q in %q", want, str)
		}
	}
}
