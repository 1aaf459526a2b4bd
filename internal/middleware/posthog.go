package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/spendcheck/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware tracks successful authenticated API calls with PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := EventNameForRoute(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if month := c.Param("month"); month != "" {
			props["month"] = month
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// EventNameForRoute turns a route template into an event name, dropping path
// parameters: "/api/users/:userId/budgets/:month" becomes "api_users_budgets".
func EventNameForRoute(fullPath string) string {
	segments := strings.Split(strings.Trim(fullPath, "/"), "/")
	kept := segments[:0]
	for _, s := range segments {
		if s == "" || strings.HasPrefix(s, ":") || strings.HasPrefix(s, "*") {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, "_")
}
