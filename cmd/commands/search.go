package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkwell-md/inkwell/internal/cli"
	"github.com/inkwell-md/inkwell/pkg/search"
)

// SearchOutput is the structured form of search results
type SearchOutput struct {
	Query   string             `json:"query" yaml:"query"`
	Count   int                `json:"count" yaml:"count"`
	Results []SearchItemOutput `json:"results" yaml:"results"`
}

// SearchItemOutput is a single match
type SearchItemOutput struct {
	Path string `json:"path" yaml:"path"`
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
}

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	var (
		outputFormat  string
		dir           string
		regex         bool
		caseSensitive bool
		limit         int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for text across markdown files",
		Long: `Search every markdown file under a directory for a query string.

By default the query is matched literally and case-insensitively. Hidden
files and directories are skipped.

Examples:
  # Search the current directory
  inkwell search "deployment checklist"

  # Search a notes directory with a regular expression
  inkwell search --regex "TODO|FIXME" --dir ~/notes

  # Case-sensitive search, JSON output
  inkwell search --case-sensitive "API" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}
			if dir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to determine current directory: %w", err)
				}
				dir = cwd
			}
			if err := cli.ValidateDirectoryPath(dir); err != nil {
				return err
			}

			results, err := search.Search(dir, args[0], search.Options{
				CaseSensitive: caseSensitive,
				Regex:         regex,
				MaxResults:    limit,
			})
			if err != nil {
				return err
			}

			if outputFormat == "json" || outputFormat == "yaml" {
				out := SearchOutput{Query: args[0], Count: len(results)}
				for _, r := range results {
					out.Results = append(out.Results, SearchItemOutput{
						Path: r.Path,
						Line: r.LineNumber,
						Text: strings.TrimSpace(r.LineContent),
					})
				}
				return cli.OutputResults(os.Stdout, outputFormat, out)
			}

			if len(results) == 0 {
				fmt.Println("No matches found.")
				return nil
			}
			for _, r := range results {
				text := cli.TruncateString(strings.TrimSpace(r.LineContent), 120)
				fmt.Printf("%s:%d: %s\n", r.Path, r.LineNumber, text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to search (default: current directory)")
	cmd.Flags().BoolVarP(&regex, "regex", "r", false, "Treat the query as a regular expression")
	cmd.Flags().BoolVarP(&caseSensitive, "case-sensitive", "c", false, "Match case exactly")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of results (default 500)")
	return cmd
}
