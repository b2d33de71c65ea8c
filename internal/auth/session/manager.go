package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contafacil/portal/internal/config"
)

// CookieName is the session cookie issued to browser clients.
const CookieName = "cf_sid"

const bearerPrefix = "Bearer "

// Manager issues and reads the portal's session credential. Browsers get an
// httpOnly cookie; API clients may instead send the raw token as a bearer
// Authorization header.
type Manager struct {
	secure bool
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{secure: cfg.AuthCookieSecure}
}

func (m *Manager) CookieName() string { return CookieName }

// ReadToken extracts the session token from the request, preferring the
// cookie over the Authorization header.
func (m *Manager) ReadToken(c *gin.Context) (string, bool) {
	if token, err := c.Cookie(CookieName); err == nil {
		if token = strings.TrimSpace(token); token != "" {
			return token, true
		}
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		if token := strings.TrimSpace(header[len(bearerPrefix):]); token != "" {
			return token, true
		}
	}
	return "", false
}

// Set writes the session cookie, expiring alongside the server-side session.
func (m *Manager) Set(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	m.write(c, token, maxAge)
}

// Clear tells the browser to drop the session cookie.
func (m *Manager) Clear(c *gin.Context) {
	m.write(c, "", -1)
}

func (m *Manager) write(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
