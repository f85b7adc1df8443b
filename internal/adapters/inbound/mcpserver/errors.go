package mcpserver

import (
	"encoding/json"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

// errorBody is the JSON object carried in the text content of an
// IsError:true CallToolResult (§4.6/§9: "exceptions for control flow" —
// application errors are reported as a structured tool result rather than
// a raw JSON-RPC error, so a caller can branch on `kind` without parsing
// JSON-RPC error codes).
type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// errorResult turns any error into an IsError CallToolResult. Errors that
// aren't a *domain.BrokerError are reported with kind "internal".
func errorResult(err error) *mcplib.CallToolResult {
	kind := string(domain.KindInternal)
	message := err.Error()

	var be *domain.BrokerError
	if b, ok := err.(*domain.BrokerError); ok {
		be = b
		kind = string(be.Kind)
		message = be.Message
	}

	body, marshalErr := json.Marshal(errorBody{Kind: kind, Message: message})
	if marshalErr != nil {
		body = []byte(`{"kind":"internal","message":"failed to encode error"}`)
	}

	result := mcplib.NewToolResultText(string(body))
	result.IsError = true
	return result
}

// jsonResult marshals v and wraps it as a successful text tool result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return errorResult(domain.NewBrokerError(domain.KindInternal, "failed to encode result", err)), nil
	}
	return mcplib.NewToolResultText(string(body)), nil
}
