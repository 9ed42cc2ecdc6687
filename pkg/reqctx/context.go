// Package reqctx carries per-request metadata through context.Context so
// services and workers can log and trace without depending on the HTTP layer.
package reqctx

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const metaKey ctxKey = 0

// RequestMeta is the metadata attached to every inbound request.
type RequestMeta struct {
	RequestID string
	UserID    uuid.UUID
	Role      string
	ClientIP  string
}

// WithMeta returns a context carrying the given request metadata.
func WithMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, metaKey, meta)
}

// Meta extracts request metadata from the context. The zero value is
// returned when none is attached (background jobs, tests).
func Meta(ctx context.Context) RequestMeta {
	meta, _ := ctx.Value(metaKey).(RequestMeta)
	return meta
}

// RequestID is a shortcut for Meta(ctx).RequestID.
func RequestID(ctx context.Context) string {
	return Meta(ctx).RequestID
}
