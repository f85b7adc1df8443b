package mcpserver

import (
	"context"
	"errors"

	"github.com/google/uuid"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

// dispatcher is the single place that applies the §4.6 cross-cutting
// concerns common to every tool: a correlation ID, structured logging, and
// translation of a returned error into an IsError tool result. The
// per-tool timeout and worker-pool slot are applied by wrap, which calls
// into the dispatcher.
type dispatcher struct {
	log *zap.Logger
}

func newDispatcher(log *zap.Logger) *dispatcher {
	return &dispatcher{log: log}
}

// wrap builds the server.ToolHandlerFunc actually registered with mcp-go:
// it assigns a correlation ID, acquires a worker-pool slot, enforces the
// tool's timeout, and logs entry/exit.
func wrap(d *dispatcher, p *pool, name string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		requestID := uuid.NewString()
		log := d.log.With(zap.String("tool", name), zap.String("request_id", requestID))

		ctx, cancel := context.WithTimeout(ctx, timeoutFor(name))
		defer cancel()

		log.Debug("tool call started")

		var result *mcplib.CallToolResult
		err := p.run(ctx, func(ctx context.Context) error {
			var handlerErr error
			result, handlerErr = handler(ctx, req)
			return handlerErr
		})

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) && !domain.IsKind(err, domain.KindTimeout) {
				err = domain.NewBrokerError(domain.KindTimeout, "tool call exceeded its timeout", err)
			}
			log.Warn("tool call failed", zap.Error(err))
			return errorResult(err), nil
		}
		if result != nil && result.IsError {
			log.Warn("tool call returned application error")
		} else {
			log.Debug("tool call completed")
		}
		return result, nil
	}
}
