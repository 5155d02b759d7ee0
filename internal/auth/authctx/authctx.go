// Package authctx provides type-safe context propagation for authentication
// claims. The verifier middleware stores the decoded claims once; downstream
// readers never re-verify the token.
package authctx

import "context"

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var claimsKey = contextKey{}

// Set stores authentication claims in the context.
func Set(ctx context.Context, claims any) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// Get retrieves typed authentication claims from the context. The second
// return is false when no claims were stored or they hold a different type.
func Get[T any](ctx context.Context) (T, bool) {
	val := ctx.Value(claimsKey)
	if val == nil {
		var zero T
		return zero, false
	}
	claims, ok := val.(T)
	return claims, ok
}
