package middleware

import "github.com/gin-gonic/gin"

// contextKey is a private type for context keys defined in this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	// loggerCtxKey stores the request-scoped logger in the request context.
	loggerCtxKey = contextKey("logger")

	// actorIDKey stores the authenticated actor's ID.
	actorIDKey = contextKey("actorID")
)

// GetActorIDFromContext retrieves the authenticated actor ID from the Gin
// context. It returns the actor ID and a boolean indicating if it was found.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	actorIDVal, exists := c.Get(string(actorIDKey))
	if !exists {
		// check in the request context as well
		if val := c.Request.Context().Value(actorIDKey); val != nil {
			return val.(string), true
		}
		return "", false
	}

	actorID, ok := actorIDVal.(string)
	if !ok {
		return "", false
	}
	return actorID, true
}
