package script

import "context"

type nameKey struct{}

// WithName returns a context that records the name of the script being
// loaded.
func WithName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, nameKey{}, name)
}

// NameFromContext returns the name recorded by WithName, or "" outside a
// load.
func NameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(nameKey{}).(string)
	return name
}
