package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ValidateOutputFormat checks whether format names a supported output
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("unsupported output format %q (expected text, json or yaml)", format)
}

// OutputResults writes data in the requested format. Text output is the
// caller's responsibility; this handles the structured formats.
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(data)
	default:
		return fmt.Errorf("no structured encoder for format %q", format)
	}
}

// TruncateString shortens s to maxLen runes with an ellipsis
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
