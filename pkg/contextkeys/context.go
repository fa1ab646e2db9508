package contextkeys

// contextKey keeps request-context keys from colliding with other packages.
type contextKey string

// DBContextKey holds the *gorm.DB (pool or test transaction) for the request.
const DBContextKey = contextKey("db")

// Keys set on gin.Context by the auth middleware.
const (
	UserIDKey   = "userID"
	UserRoleKey = "role"
)
