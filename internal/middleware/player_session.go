package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextKeyPlayerID is the Gin context key for the player's opaque id.
	ContextKeyPlayerID = "player_id"
	// PlayerCookieName is the cookie carrying the opaque player id.
	PlayerCookieName = "milionerzy_sid"

	playerCookieMaxAge = 60 * 60 * 24 * 30 // 30 days
)

// PlayerSession issues an opaque player id cookie when the client does not
// present one, and exposes the id on the Gin context. The id keys the
// server-side game session in Redis; it carries no identity beyond that.
func PlayerSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(PlayerCookieName)
		if err != nil || sid == "" {
			sid = uuid.New().String()
			c.SetCookie(PlayerCookieName, sid, playerCookieMaxAge, "/", "", false, true)
		}

		c.Set(ContextKeyPlayerID, sid)
		c.Next()
	}
}

// GetPlayerID returns the player id set by PlayerSession, or "" if absent.
func GetPlayerID(c *gin.Context) string {
	id, _ := c.Get(ContextKeyPlayerID)
	s, _ := id.(string)
	return s
}
