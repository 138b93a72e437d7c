package cli

import (
	"encoding/json"
	"os"

	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

// Global JSON output flag
var jsonOutput bool

func isJSONOutput() bool {
	return jsonOutput
}

// Response is the standard JSON envelope for all CLI output.
type Response struct {
	OK       bool            `json:"ok"`
	Data     interface{}     `json:"data,omitempty"`
	Error    *ErrorInfo      `json:"error,omitempty"`
	Warnings []graph.Warning `json:"warnings,omitempty"`
	Meta     *Meta           `json:"meta,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Meta contains metadata about the response.
type Meta struct {
	Count       int   `json:"count,omitempty"`
	BuildTimeMs int64 `json:"build_time_ms,omitempty"`
}

// outputJSON outputs the response as JSON to stdout.
func outputJSON(resp Response) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

// outputSuccess outputs a successful JSON response.
func outputSuccess(data interface{}, warnings []graph.Warning, meta *Meta) {
	outputJSON(Response{
		OK:       true,
		Data:     data,
		Warnings: warnings,
		Meta:     meta,
	})
}

// outputError outputs an error JSON response.
func outputError(code, message, suggestion string) {
	outputJSON(Response{
		OK: false,
		Error: &ErrorInfo{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
		},
	})
}
