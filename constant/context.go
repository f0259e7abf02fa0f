package constant

type ContextKey string

// UserIDKey carries the authenticated coordinator id through request contexts.
const UserIDKey ContextKey = "user_id"
