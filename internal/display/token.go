package display

import "context"

// Token identifies one rebuild attempt. Cancellation is one-way: once
// cancelled a token never becomes valid again.
type Token struct {
	id     uint64
	ctx    context.Context
	cancel context.CancelFunc
}

func newToken(parent context.Context, id uint64) *Token {
	ctx, cancel := context.WithCancel(parent)
	return &Token{id: id, ctx: ctx, cancel: cancel}
}

// ID returns the token's sequence number.
func (t *Token) ID() uint64 {
	return t.id
}

// Cancel invalidates the token. It is safe to call more than once and from
// any goroutine.
func (t *Token) Cancel() {
	t.cancel()
}

// Cancelled reports whether the token has been invalidated.
func (t *Token) Cancelled() bool {
	return t.ctx.Err() != nil
}

// Context returns a context that is done once the token is cancelled.
func (t *Token) Context() context.Context {
	return t.ctx
}
