package inbound

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/arffview/internal/arff/usecase"
)

func TestFlashRoundTrip(t *testing.T) {
	set := httptest.NewRecorder()
	pushFlash(set, flashMessage{Level: levelError, Text: "bad file, très mal"}, true)

	cookies := set.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	if c := cookies[0]; !c.Secure || !c.HttpOnly || c.SameSite != http.SameSiteLaxMode || c.Path != "/" {
		t.Fatalf("unexpected cookie attributes: %+v", c)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	got := popFlash(httptest.NewRecorder(), req, true)

	if len(got) != 1 || got[0].Text != "bad file, très mal" || got[0].Level != levelError {
		t.Fatalf("unexpected messages: %+v", got)
	}
}

func TestPopFlashIgnoresGarbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: "%%%not-base64"})

	rec := httptest.NewRecorder()
	if got := popFlash(rec, req, false); got != nil {
		t.Fatalf("expected no messages, got %+v", got)
	}
	if len(rec.Result().Cookies()) != 1 {
		t.Fatal("expected garbage cookie to be expired")
	}
}

func TestBodyLimitReaderReportsTooLarge(t *testing.T) {
	body := http.MaxBytesReader(httptest.NewRecorder(), io.NopCloser(strings.NewReader(strings.Repeat("x", 32))), 8)

	_, err := io.ReadAll(bodyLimitReader{r: body})
	if !errors.Is(err, usecase.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}
