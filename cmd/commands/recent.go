package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-md/inkwell/internal/cli"
	"github.com/inkwell-md/inkwell/pkg/files"
	"github.com/inkwell-md/inkwell/pkg/models"
)

// RecentOutput is the structured form of the recent-files list
type RecentOutput struct {
	Count   int                 `json:"count" yaml:"count"`
	Entries []models.RecentFile `json:"entries" yaml:"entries"`
}

// NewRecentCommand creates the recent command
func NewRecentCommand() *cobra.Command {
	var (
		outputFormat string
		clearList    bool
	)

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened files",
		Long: `List the files most recently opened in the editor, newest first.

Examples:
  # Show recent files
  inkwell recent

  # Show recent files as JSON
  inkwell recent -o json

  # Clear the list
  inkwell recent --clear`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}

			if clearList {
				if err := files.SaveRecent(nil); err != nil {
					return fmt.Errorf("failed to clear recent files: %w", err)
				}
				cli.PrintSuccess("Cleared recent files")
				return nil
			}

			entries, err := files.LoadRecent()
			if err != nil {
				return err
			}

			if outputFormat == "json" || outputFormat == "yaml" {
				return cli.OutputResults(os.Stdout, outputFormat, RecentOutput{
					Count:   len(entries),
					Entries: entries,
				})
			}

			if len(entries) == 0 {
				fmt.Println("No recent files.")
				return nil
			}

			table := cli.NewTableFormatter(os.Stdout)
			table.Header("LAST USED", "PATH")
			for _, entry := range entries {
				table.Row(entry.LastUsed.Format("2006-01-02 15:04"), entry.Path)
			}
			table.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&clearList, "clear", false, "Clear the recent-files list")
	return cmd
}
