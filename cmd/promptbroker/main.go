package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/michaelprinc/mcp-prompt-broker/internal/adapters/inbound/cli"
	"github.com/michaelprinc/mcp-prompt-broker/internal/adapters/outbound/obscfg"
	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

// shutdownGrace is resolved once, independently of the server's own flag
// parsing, so main.go can bound the shutdown window even if cli.Execute
// does not return promptly after a shutdown signal.
func shutdownGrace() time.Duration {
	cfg, err := obscfg.Resolve(obscfg.Flags{})
	if err != nil {
		return 2 * time.Second
	}
	return cfg.ShutdownGrace
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- cli.Execute(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			if domain.IsKind(err, domain.KindConfig) {
				os.Exit(2)
			}
			os.Exit(1)
		}
		return

	case <-sigCh:
		cancel()
		select {
		case <-errCh:
		case <-time.After(shutdownGrace()):
		}
		return
	}
}
