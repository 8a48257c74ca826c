package usecase

import (
	"context"

	"github.com/google/uuid"
)

// requestIDKey is a context key type for carrying the HTTP request id.
type requestIDKey struct{}

// WithRequestID stores the request id in the context.
// This is typically called by the request id middleware so audit entries can
// be correlated with the HTTP request that produced them.
func WithRequestID(ctx context.Context, requestID uuid.UUID) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestID retrieves the request id from the context.
// Returns uuid.Nil when no request id was set (e.g. outside an HTTP request).
func GetRequestID(ctx context.Context) uuid.UUID {
	requestID, ok := ctx.Value(requestIDKey{}).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return requestID
}
