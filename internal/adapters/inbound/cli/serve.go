package cli

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/michaelprinc/mcp-prompt-broker/internal/adapters/inbound/mcpserver"
	"github.com/michaelprinc/mcp-prompt-broker/internal/adapters/outbound/catalogexport"
	"github.com/michaelprinc/mcp-prompt-broker/internal/adapters/outbound/obscfg"
	"github.com/michaelprinc/mcp-prompt-broker/internal/adapters/outbound/obslog"
	"github.com/michaelprinc/mcp-prompt-broker/internal/adapters/outbound/profilefs"
	"github.com/michaelprinc/mcp-prompt-broker/internal/application/analyser"
	"github.com/michaelprinc/mcp-prompt-broker/internal/application/broker"
	"github.com/michaelprinc/mcp-prompt-broker/internal/application/router"
	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

// watchDebounce is the fsnotify event-coalescing window for --watch (C8).
const watchDebounce = 300 * time.Millisecond

// runServe resolves configuration, builds the catalog and the broker, and
// blocks serving MCP tool calls over stdio until the transport closes.
func runServe(ctx context.Context, flags obscfg.Flags) error {
	cfg, err := obscfg.Resolve(flags)
	if err != nil {
		return domain.NewBrokerError(domain.KindConfig, "resolving configuration", err)
	}

	log, err := obslog.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	loader := profilefs.NewLoader(cfg.ProfilesDir)
	report, err := loader.Load(ctx)
	if err != nil {
		return domain.NewBrokerError(domain.KindConfig, fmt.Sprintf("loading profiles from %q", cfg.ProfilesDir), err)
	}
	log.Info("profiles loaded",
		zap.Int("count", len(report.ProfilesLoaded)),
		zap.Int("errors", len(report.Errors)),
	)

	exporter := catalogexport.New(cfg.ProfilesDir)
	if err := exporter.Export(ctx, loader.Current()); err != nil {
		log.Warn("initial metadata export failed", zap.Error(err))
	}

	b := broker.New(loader, analyser.New(cfg.Router), router.New(cfg.Router), exporter)

	if cfg.Watch {
		go func() {
			if err := loader.Watch(ctx, watchDebounce, func(err error) {
				log.Warn("watch reload failed", zap.Error(err))
			}); err != nil {
				log.Warn("profile watcher stopped", zap.Error(err))
			}
		}()
	}

	s := mcpserver.New(b, log)
	log.Info("serving MCP tools over stdio", zap.String("profiles_dir", cfg.ProfilesDir))
	return mcpserver.ServeStdio(s)
}
