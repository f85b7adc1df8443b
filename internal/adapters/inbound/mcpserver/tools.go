package mcpserver

import (
	"context"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/michaelprinc/mcp-prompt-broker/internal/application/broker"
	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

// toolTimeouts implements §5's per-tool timeout table; any tool not listed
// here gets the 1s default.
var toolTimeouts = map[string]time.Duration{
	"resolve_prompt":   5 * time.Second,
	"get_profile":      5 * time.Second,
	"reload_profiles":  30 * time.Second,
}

const defaultToolTimeout = 1 * time.Second

func timeoutFor(name string) time.Duration {
	if d, ok := toolTimeouts[name]; ok {
		return d
	}
	return defaultToolTimeout
}

func registerTools(s *server.MCPServer, b *broker.Broker, p *pool, d *dispatcher) {
	s.AddTool(mcplib.NewTool("list_profiles",
		mcplib.WithDescription("List every loaded profile's metadata projection."),
	), wrap(d, p, "list_profiles", handleListProfiles(b)))

	resolve := wrap(d, p, "resolve_prompt", handleResolvePrompt(b))
	s.AddTool(resolvePromptTool("resolve_prompt"), resolve)
	s.AddTool(resolvePromptTool("get_profile"), wrap(d, p, "get_profile", handleResolvePrompt(b)))

	s.AddTool(mcplib.NewTool("reload_profiles",
		mcplib.WithDescription("Re-scan the profiles directory and atomically swap the catalog."),
	), wrap(d, p, "reload_profiles", handleReloadProfiles(b)))

	s.AddTool(mcplib.NewTool("get_checklist",
		mcplib.WithDescription("Return a profile's checklist items."),
		mcplib.WithString("profile_name", mcplib.Required(), mcplib.Description("Name of the profile.")),
	), wrap(d, p, "get_checklist", handleGetChecklist(b)))

	s.AddTool(mcplib.NewTool("get_profile_metadata",
		mcplib.WithDescription("Return a profile's provenance metadata, excluding instructions and checklist bodies."),
		mcplib.WithString("profile_name", mcplib.Required(), mcplib.Description("Name of the profile.")),
	), wrap(d, p, "get_profile_metadata", handleGetProfileMetadata(b)))

	s.AddTool(mcplib.NewTool("find_profiles_by_capability",
		mcplib.WithDescription("Find profiles whose capabilities match the given tag."),
		mcplib.WithString("capability", mcplib.Required(), mcplib.Description("Capability tag to search for.")),
	), wrap(d, p, "find_profiles_by_capability", handleFindByCapability(b)))

	s.AddTool(mcplib.NewTool("find_profiles_by_domain",
		mcplib.WithDescription("Find profiles whose domains match the given tag."),
		mcplib.WithString("domain", mcplib.Required(), mcplib.Description("Domain tag to search for.")),
	), wrap(d, p, "find_profiles_by_domain", handleFindByDomain(b)))

	s.AddTool(mcplib.NewTool("get_registry_summary",
		mcplib.WithDescription("Return the catalog's aggregate summary."),
	), wrap(d, p, "get_registry_summary", handleRegistrySummary(b)))
}

func resolvePromptTool(name string) mcplib.Tool {
	return mcplib.NewTool(name,
		mcplib.WithDescription("Resolve a raw prompt to its best-matching profile via the router."),
		mcplib.WithString("prompt", mcplib.Required(), mcplib.Description("The raw prompt text to route.")),
		mcplib.WithObject("metadata", mcplib.Description("Optional metadata overrides (domain, intent, sensitivity, priority, audience, language, complexity, context_tags, capabilities, profile_name).")),
	)
}

func handleListProfiles(b *broker.Broker) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(b.ListProfiles(ctx))
	}
}

func handleResolvePrompt(b *broker.Broker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		prompt, err := req.RequireString("prompt")
		if err != nil {
			return errorResult(domain.NewBrokerError(domain.KindInvalidArgument, "prompt is required", err)), nil
		}

		overrides, _ := req.GetArguments()["metadata"].(map[string]interface{})

		result, err := b.ResolvePrompt(ctx, prompt, overrides)
		if err != nil {
			return errorResult(err), nil
		}

		return jsonResult(map[string]interface{}{
			"profile":  result.Profile,
			"metadata": result.Metadata,
			"routing": map[string]interface{}{
				"score":       result.Score,
				"consistency": result.Consistency,
				"reason":      result.Reason,
			},
		})
	}
}

func handleReloadProfiles(b *broker.Broker) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := b.ReloadProfiles(ctx)
		if err != nil {
			return errorResult(err), nil
		}

		errs := make([]string, len(report.Errors))
		for i, e := range report.Errors {
			errs[i] = e.Path + ": " + e.Reason
		}

		return jsonResult(map[string]interface{}{
			"success":         true,
			"profiles_loaded": len(report.ProfilesLoaded),
			"profile_names":   report.ProfilesLoaded,
			"errors":          errs,
			"warnings":        report.Warnings,
		})
	}
}

func handleGetChecklist(b *broker.Broker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := req.RequireString("profile_name")
		if err != nil {
			return errorResult(domain.NewBrokerError(domain.KindInvalidArgument, "profile_name is required", err)), nil
		}
		items, err := b.GetChecklist(ctx, name)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(map[string]interface{}{
			"profile_name": name,
			"items":        items,
			"count":        len(items),
		})
	}
}

func handleGetProfileMetadata(b *broker.Broker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := req.RequireString("profile_name")
		if err != nil {
			return errorResult(domain.NewBrokerError(domain.KindInvalidArgument, "profile_name is required", err)), nil
		}
		meta, err := b.GetProfileMetadata(ctx, name)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(meta)
	}
}

func handleFindByCapability(b *broker.Broker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cap, err := req.RequireString("capability")
		if err != nil || cap == "" {
			return errorResult(domain.NewBrokerError(domain.KindInvalidArgument, "capability must not be empty", err)), nil
		}
		matches := b.FindProfilesByCapability(ctx, cap)
		return jsonResult(map[string]interface{}{"profiles": matches, "count": len(matches)})
	}
}

func handleFindByDomain(b *broker.Broker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		domainTag, err := req.RequireString("domain")
		if err != nil || domainTag == "" {
			return errorResult(domain.NewBrokerError(domain.KindInvalidArgument, "domain must not be empty", err)), nil
		}
		matches := b.FindProfilesByDomain(ctx, domainTag)
		return jsonResult(map[string]interface{}{"profiles": matches, "count": len(matches)})
	}
}

func handleRegistrySummary(b *broker.Broker) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(b.GetRegistrySummary(ctx))
	}
}
