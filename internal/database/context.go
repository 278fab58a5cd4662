package database

import "context"

type requestIDKey struct{}

// ContextWithRequestID tags ctx so SQL log entries can be matched to the
// HTTP request that caused them.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
