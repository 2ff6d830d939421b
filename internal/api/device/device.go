// Package device issues and reads the opaque per-browser id that scopes
// wizard sessions and the unlock gate to one device.
package device

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CookieName is the cookie the device id travels in.
const CookieName = "rsvp_device"

const localsKey = "rsvp_device_id"

// Identity ensures every caller carries a device id cookie and makes it
// available to handlers.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		deviceID := c.Cookies(CookieName)
		if deviceID == "" {
			deviceID = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     CookieName,
				Value:    deviceID,
				Expires:  time.Now().AddDate(1, 0, 0),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(localsKey, deviceID)
		return c.Next()
	}
}

// FromContext returns the device id set by Identity.
func FromContext(c *fiber.Ctx) string {
	deviceID, _ := c.Locals(localsKey).(string)
	return deviceID
}
