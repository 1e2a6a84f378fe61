package storage

import (
	"context"
	"sync"
)

type unitKey struct{}

// unitOfWork collects the changes staged through one context. Save with the
// same context applies exactly those changes and nothing staged elsewhere.
type unitOfWork struct {
	mu  sync.Mutex
	ops []pendingOp
}

// WithUnitOfWork returns a context whose New and Delete calls are staged
// apart from every other context's until Save is called with it. A context
// that already carries a unit of work is returned unchanged.
//
//	ctx = storage.WithUnitOfWork(ctx)
//	engine.New(ctx, place)
//	engine.Save(ctx)
func WithUnitOfWork(ctx context.Context) context.Context {
	if unitFrom(ctx) != nil {
		return ctx
	}
	return context.WithValue(ctx, unitKey{}, &unitOfWork{})
}

func unitFrom(ctx context.Context) *unitOfWork {
	u, _ := ctx.Value(unitKey{}).(*unitOfWork)
	return u
}

func (u *unitOfWork) add(op pendingOp) {
	u.mu.Lock()
	u.ops = append(u.ops, op)
	u.mu.Unlock()
}

// take empties the unit and returns what it held.
func (u *unitOfWork) take() []pendingOp {
	u.mu.Lock()
	defer u.mu.Unlock()
	ops := u.ops
	u.ops = nil
	return ops
}
