// Package session управляет cookie с JWT токеном сессии.
package session

import (
	"net/http"
	"time"
)

// CookieName — имя cookie с токеном сессии.
const CookieName = "auth_token"

// Set устанавливает cookie с токеном на срок жизни токена.
func Set(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear удаляет cookie сессии.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// Token возвращает токен из cookie запроса, либо пустую строку.
func Token(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
