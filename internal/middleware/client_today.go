package middleware

import (
	"net/http"

	"planner/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	ClientTodayHeader = "X-Client-Today"
	ClientTodayKey    = "clientToday"
)

// ClientToday reads the caller's local calendar date from the X-Client-Today
// header. A missing header is fine; a malformed one is rejected.
func ClientToday() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(ClientTodayHeader)
		if raw == "" {
			c.Next()
			return
		}

		today, err := model.ParseDate(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid X-Client-Today header, expected YYYY-MM-DD"})
			return
		}

		c.Set(ClientTodayKey, today)
		c.Next()
	}
}

// GetClientToday returns the date set by ClientToday, if any.
func GetClientToday(c *gin.Context) (model.Date, bool) {
	v, exists := c.Get(ClientTodayKey)
	if !exists {
		return model.Date{}, false
	}
	today, ok := v.(model.Date)
	return today, ok
}
