package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kamusis/skillbook/internal/catalog"
	"github.com/spf13/cobra"
)

var flagShowRaw bool

var showCmd = &cobra.Command{
	Use:   "show <skill-name>",
	Short: "Display a skill's content",
	Long: `Print the full SKILL.md of a skill, header included.

The name is matched, in order, against:
  - a directory name (e.g. swiftui-programming-skill)
  - a directory name with "-skill" appended (e.g. swiftui-programming)
  - a case-insensitive substring of the skill's display name

Example:
  skillbook show swiftui-programming
  skillbook show --raw "memory" > skill.md`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowRaw, "raw", false, "Print only the document, without framing")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	_, content, err := loadSkill(cmd.Context(), name)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flagShowRaw {
		_, err := io.WriteString(w, content)
		return err
	}
	printDocument(w, name, content)
	return nil
}

// loadSkill resolves name and returns the document path and its raw text.
func loadSkill(ctx context.Context, name string) (string, string, error) {
	path, err := openCatalog().Resolve(ctx, name)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return "", "", fmt.Errorf("%w\nUse 'skillbook list' to see available skills.", err)
		}
		return "", "", err
	}
	content, err := catalog.ReadDocument(path)
	if err != nil {
		return "", "", err
	}
	return path, content, nil
}

func printDocument(w io.Writer, name, content string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", headerColor.Sprint("Skill Content:"), name)
	printRule(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, content)
	fmt.Fprintln(w)
	printRule(w)
	fmt.Fprintln(w)
}
