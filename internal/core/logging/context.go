package logging

import "context"

type contextKey string

const (
	ownerKey   contextKey = "owner"
	commandKey contextKey = "command"
)

// WithOwner adds a gallery owner key (e.g. "hotel:harbor-view") to the context.
func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, ownerKey, owner)
}

// WithCommand adds the running CLI command name to the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// GetOwner retrieves the owner key from the context.
// Returns empty string if not present.
func GetOwner(ctx context.Context) string {
	if id, ok := ctx.Value(ownerKey).(string); ok {
		return id
	}
	return ""
}

// GetCommand retrieves the command name from the context.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}
