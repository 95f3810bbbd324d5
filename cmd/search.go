package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/kamusis/skillbook/internal/catalog"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword...>",
	Short: "Search skills by keyword",
	Long: `Search skill names, descriptions and activation hints for a keyword.
Matching ignores case. Several arguments are joined with spaces into a single
keyword.

Example:
  skillbook search memory leak`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := strings.Join(args, " ")
	results := openCatalog().Search(cmd.Context(), keyword)
	printSearchResults(cmd.OutOrStdout(), keyword, results)
	return nil
}

func printSearchResults(w io.Writer, keyword string, results []catalog.Entry) {
	if len(results) == 0 {
		warnColor.Fprintf(w, "No skills found matching '%s'.\n", keyword)
		return
	}

	printSection(w, fmt.Sprintf("Search Results for '%s':", keyword))
	for _, e := range results {
		titleColor.Fprintln(w, e.DisplayName)
		printField(w, labelColor, "Directory", e.DirectoryName)
		printField(w, descColor, "Description", e.Description)
		fmt.Fprintln(w)
	}
	labelColor.Fprintf(w, "Found %d matching skill(s).\n\n", len(results))
}
