package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kamusis/skillbook/internal/catalog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagListFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available skills",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagListFormat, "format", "f", "text", "Output format: text, json or yaml")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	entries := openCatalog().Scan(cmd.Context())
	return renderList(cmd.OutOrStdout(), entries, flagListFormat)
}

func renderList(w io.Writer, entries []catalog.Entry, format string) error {
	switch format {
	case "text", "":
		printListText(w, entries)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q: expected text, json or yaml", format)
	}
}

func printListText(w io.Writer, entries []catalog.Entry) {
	printSection(w, "Skills Collection")

	for i, e := range entries {
		titleColor.Fprintf(w, "%d. %s\n", i+1, e.DisplayName)
		printField(w, labelColor, "Directory", e.DirectoryName)
		printField(w, descColor, "Description", e.Description)
		printField(w, verColor, "Version", e.Version)
		fmt.Fprintln(w)
	}

	printRule(w)
	fmt.Fprintf(w, "Total skills: %d\n\n", len(entries))
}
