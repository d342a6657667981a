package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionIDKey = "sessionID"

// SessionCfg configures browser session cookie
type SessionCfg struct {
	CookieName string
	TimeToLive time.Duration
	Secure     bool
}

// Session assigns every browser an identifier which view models of the console are kept under
func Session(cfg SessionCfg) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if cookie, err := c.Cookie(cfg.CookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					sid = cookie.Value
				}
			}

			if sid == "" {
				sid = uuid.NewString()
			}

			c.SetCookie(&http.Cookie{
				Name:     cfg.CookieName,
				Value:    sid,
				Path:     "/",
				MaxAge:   int(cfg.TimeToLive.Seconds()),
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(sessionIDKey, sid)

			return next(c)
		}
	}
}

// SessionID returns identifier assigned by Session middleware
func SessionID(c echo.Context) string {
	sid, _ := c.Get(sessionIDKey).(string)
	return sid
}
