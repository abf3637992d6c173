package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/arffview/internal/pkg/pkgerror"
)

type errorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Success bool   `json:"success"`
}

// statusCoder lets a payload choose its HTTP status; 200 otherwise.
type statusCoder interface {
	StatusCode() int
}

// encodeError renders err as {"error": msg, "success": false}. Only the
// user-facing message of a *pkgerror.Error leaves the process.
func encodeError(ctx context.Context, w http.ResponseWriter, err error) {
	var gerr *pkgerror.Error
	if !errors.As(err, &gerr) {
		slog.ErrorContext(ctx, "unclassified handler error", "error", err)
		writeJSON(w, errorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	if gerr.Type() == pkgerror.TypeServer {
		slog.ErrorContext(ctx, "handler failed", "error", gerr.String())
	}

	writeJSON(w, errorResponse{Error: gerr.Msg()}, gerr.StatusCode())
}

func encodeResponse(w http.ResponseWriter, resp any) {
	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	code := http.StatusOK
	if sc, ok := resp.(statusCoder); ok {
		code = sc.StatusCode()
	}
	if code == http.StatusNoContent {
		w.WriteHeader(code)
		return
	}

	writeJSON(w, resp, code)
}

// jsonStatus answers every request with a fixed status. An empty msg means
// success and renders the health payload.
func jsonStatus(code int, msg string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if msg == "" {
			writeJSON(w, healthResponse{Status: "ok", Success: true}, code)
			return
		}
		writeJSON(w, errorResponse{Error: msg}, code)
	})
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode json response", "error", err)
	}
}
