package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// TableFormatter writes aligned columnar output
type TableFormatter struct {
	writer *tabwriter.Writer
}

// NewTableFormatter creates a formatter writing to w
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer: tabwriter.NewWriter(w, 0, 4, 2, ' ', 0),
	}
}

// Header writes the column headers
func (t *TableFormatter) Header(columns ...string) {
	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(t.writer, "\t")
		}
		fmt.Fprint(t.writer, col)
	}
	fmt.Fprintln(t.writer)
}

// Row writes a data row
func (t *TableFormatter) Row(values ...string) {
	for i, val := range values {
		if i > 0 {
			fmt.Fprint(t.writer, "\t")
		}
		fmt.Fprint(t.writer, val)
	}
	fmt.Fprintln(t.writer)
}

// Flush writes any buffered output
func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// OutputResults writes data in the requested format (json, yaml, or table via fallback)
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(data)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// TruncateString shortens s to maxLen with an ellipsis
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// PrintError writes an error message to stderr
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// PrintSuccess writes a confirmation message to stdout
func PrintSuccess(format string, args ...interface{}) {
	fmt.Printf("✓ "+format+"\n", args...)
}
