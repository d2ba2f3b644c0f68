package server

import (
	"net/http"

	"github.com/desertthunder/guildboard/internal/models"
)

// Cookie lifetimes in seconds.
const (
	AccessTokenMaxAge  = 3600    // 1 hour
	RefreshTokenMaxAge = 1209600 // 14 days
)

// setSessionCookies stores both tokens as HttpOnly cookies scoped to the whole site.
func setSessionCookies(w http.ResponseWriter, r *http.Request, tokens *models.Tokens) {
	setCookie(w, r, models.AccessTokenCookie, tokens.AccessToken, AccessTokenMaxAge)
	setCookie(w, r, models.RefreshTokenCookie, tokens.RefreshToken, RefreshTokenMaxAge)
}

func setCookie(w http.ResponseWriter, r *http.Request, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// cookieValue returns the named cookie's value, or "" when the request doesn't carry it.
func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
