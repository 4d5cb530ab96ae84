package console

import "context"

type verboseKey struct{}

// SetVerbose records the verbose flag in the context so deep call sites
// (adapter wire dumps) can honor it without threading a flag through.
func SetVerbose(parent context.Context, value bool) context.Context {
	return context.WithValue(parent, verboseKey{}, value)
}

func IsVerbose(ctx context.Context) bool {
	value, ok := ctx.Value(verboseKey{}).(bool)
	return ok && value
}
