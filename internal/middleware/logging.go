package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every processed request with logrus
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			entry := logrus.WithFields(logrus.Fields{
				"method":  req.Method,
				"uri":     req.RequestURI,
				"status":  res.Status,
				"latency": time.Since(start).String(),
				"session": SessionID(c),
			})

			if res.Status >= 500 {
				entry.Error("request failed")
			} else {
				entry.Info("request processed")
			}
			return nil
		}
	}
}
