package inbound

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookie = "arff_flash"

type flashLevel string

const levelError flashLevel = "error"

type flashMessage struct {
	Level flashLevel `json:"level"`
	Text  string     `json:"text"`
}

// pushFlash stores a message for the next page rendered for this client.
func pushFlash(w http.ResponseWriter, msg flashMessage, secure bool) {
	raw, err := json.Marshal([]flashMessage{msg})
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns pending messages and expires the cookie. An undecodable
// cookie is dropped silently.
func popFlash(w http.ResponseWriter, r *http.Request, secure bool) []flashMessage {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}

	var msgs []flashMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil
	}

	return msgs
}
