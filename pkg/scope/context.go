package scope

import "context"

type claimsCtxKey[P any] struct{}

// SetClaimsToContext stores claims of type P in ctx.
func SetClaimsToContext[P any](ctx context.Context, claims P) context.Context {
	return context.WithValue(ctx, claimsCtxKey[P]{}, claims)
}

// GetClaimsFromContext returns the claims of type P stored by SetClaimsToContext.
func GetClaimsFromContext[P any](ctx context.Context) (P, bool) {
	claims, ok := ctx.Value(claimsCtxKey[P]{}).(P)
	return claims, ok
}
