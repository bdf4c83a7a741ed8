package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkwell-md/inkwell/internal/cli"
	"github.com/inkwell-md/inkwell/pkg/files"
	"github.com/inkwell-md/inkwell/pkg/markdown"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	var (
		outFile  string
		title    string
		fragment bool
	)

	cmd := &cobra.Command{
		Use:   "export <file.md>",
		Short: "Export a markdown file to HTML",
		Long: `Render a markdown file to HTML on stdout or into a file.

Code fences keep their info-string metadata: the language class, the
filename, and any line-highlight ranges are carried into the output as
attributes.

Examples:
  # Export to stdout
  inkwell export notes.md

  # Export to a file
  inkwell export notes.md --file notes.html

  # Emit only the body fragment, no document shell
  inkwell export notes.md --fragment`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := cli.ValidateMarkdownPath(path); err != nil {
				return err
			}

			content, err := files.ReadDocument(path)
			if err != nil {
				return err
			}

			body, err := markdown.ExportHTML(content)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", path, err)
			}

			output := body
			if !fragment {
				if title == "" {
					title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				}
				output = documentShell(title, body)
			}

			if outFile == "" {
				fmt.Print(output)
				return nil
			}
			if err := files.WriteDocument(outFile, output); err != nil {
				return err
			}
			cli.PrintSuccess("Exported %s to %s", path, outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "file", "f", "", "Write output to a file instead of stdout")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Document title (default: file name)")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "Emit the HTML body only")
	return cmd
}

func documentShell(title, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
