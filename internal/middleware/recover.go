package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

// Recover converts a panic in a handler into an error so the request ends
// with a 500 instead of taking the process down.
func Recover(log *logrus.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.WithFields(logrus.Fields{
				"request_id": GetRequestID(c),
				"method":     c.Method(),
				"path":       c.Path(),
				"panic":      fmt.Sprint(e),
			}).Error("recovered from panic")
		},
	})
}
