package middleware

import (
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"
)

// UserIDHeader carries the caller's identity. Authentication itself lives
// at the gateway; this service only needs to know who to attribute holds
// and bookings to.
const UserIDHeader = "X-User-ID"

func Identity() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing " + UserIDHeader + " header"},
			)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid " + UserIDHeader + " header"},
			)
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
