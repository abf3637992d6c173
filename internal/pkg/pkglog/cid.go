package pkglog

import "context"

type correlationIDKey struct{}

// GetCorrelationID returns the request correlation ID carried by ctx, or ""
// when the context did not pass through the HTTP router.
func GetCorrelationID(ctx context.Context) string {
	cid, _ := ctx.Value(correlationIDKey{}).(string)
	return cid
}

// SetCorrelationID returns a copy of ctx carrying cid.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}
