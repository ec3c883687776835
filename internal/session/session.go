// Package session identifies anonymous browser sessions. The session id
// scopes the shopping cart; nothing else is stored under it.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"
)

type Options struct {
	CookieName  string
	IdleTimeout time.Duration
	Secure      bool
}

func DefaultOptions() Options {
	return Options{
		CookieName:  "eshop_session",
		IdleTimeout: 30 * time.Minute,
	}
}

type ctxKey struct{}

// NewID returns a random 32-byte hex id.
func NewID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IDFrom returns the session id carried by ctx, if any.
func IDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// Middleware attaches the session id from the cookie, issuing a new one when
// the browser has none. The cookie is re-sent on every response so its
// lifetime slides with activity.
func Middleware(opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cookie, err := r.Cookie(opts.CookieName); err == nil && cookie.Value != "" {
				id = cookie.Value
			} else {
				newID, err := NewID()
				if err != nil {
					http.Error(w, "failed to start session", http.StatusInternalServerError)
					return
				}
				id = newID
			}

			http.SetCookie(w, &http.Cookie{
				Name:     opts.CookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(opts.IdleTimeout.Seconds()),
				HttpOnly: true,
				Secure:   opts.Secure,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		})
	}
}
