package mcpserver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// pool bounds the number of tool calls executing concurrently to
// max(2, NumCPU), per §5. Each accepted call acquires a slot before
// running its handler and releases it on completion; mark3labs/mcp-go
// continues to own the stdin/stdout framing around it.
type pool struct {
	sem chan struct{}
}

func newPool() *pool {
	n := runtime.NumCPU()
	if n < 2 {
		n = 2
	}
	return &pool{sem: make(chan struct{}, n)}
}

// run acquires a slot, executes fn under an errgroup (so a panic-free
// handler error propagates cleanly), and releases the slot. It returns
// ctx.Err() if the context is cancelled before a slot becomes free.
func (p *pool) run(ctx context.Context, fn func(context.Context) error) error {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-p.sem }()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fn(gctx)
	})
	return g.Wait()
}
