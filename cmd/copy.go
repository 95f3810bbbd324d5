package cmd

import (
	"context"
	"io"

	"github.com/kamusis/skillbook/internal/clipboard"
	"github.com/kamusis/skillbook/internal/logger"
	"github.com/spf13/cobra"
)

// clipboardWriter is replaced in tests.
var clipboardWriter clipboard.Writer = clipboard.System{}

var copyCmd = &cobra.Command{
	Use:   "copy <skill-name>",
	Short: "Copy a skill's content to the clipboard",
	Long: `Copy the full SKILL.md of a skill to the system clipboard.

When no clipboard utility is available (pbcopy, xclip, xsel, wl-copy or the
Windows clipboard) a warning is printed together with a command to copy the
file by hand. This is not treated as a failure.`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	path, content, err := loadSkill(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	copyToClipboard(cmd.Context(), cmd.OutOrStdout(), clipboardWriter, path, content)
	return nil
}

// copyToClipboard writes content to cb and reports the outcome. It returns
// false when the clipboard could not be used.
func copyToClipboard(ctx context.Context, w io.Writer, cb clipboard.Writer, path, content string) bool {
	if err := cb.WriteAll(content); err != nil {
		logger.G(ctx).WithError(err).Debug("clipboard write failed")
		printWarn(w, "", "Could not copy to clipboard automatically.")
		printInfo(w, "", "Manual copy: "+clipboard.ManualCommand(path))
		return false
	}
	printOK(w, "", "Skill content copied to clipboard!")
	printInfo(w, "", "Paste it into your conversation to activate the skill.")
	return true
}
