// Package requestdata carries the authenticated caller's identity through
// the request context. Instances are request-scoped and discarded with the
// request; nothing here is shared between requests.
package requestdata

import "context"

type RequestData struct {
	UserID uint
	Role   int
}

type ctxKey struct{}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, ctxKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	rd, _ := ctx.Value(ctxKey{}).(*RequestData)
	return rd
}
