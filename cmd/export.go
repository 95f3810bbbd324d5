package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/kamusis/skillbook/internal/config"
	"github.com/kamusis/skillbook/internal/exporter"
	"github.com/kamusis/skillbook/internal/logger"
	"github.com/spf13/cobra"
)

const (
	exportLockTimeout = 10 * time.Second
	exportLockRetry   = 200 * time.Millisecond
)

var flagExportForce bool

var exportCmd = &cobra.Command{
	Use:   "export <skill-name> <dest-dir>",
	Short: "Copy a skill directory into another location",
	Long: `Copy the whole directory of a skill into <dest-dir>/<skill-directory>.

Files matching the configured excludes are skipped. Files identical to ones
already at the destination are left alone; differing files are written next
to the existing ones as *.conflict-skillbook.* unless --force is given.

Example:
  skillbook export swiftui-programming ~/.claude/skills`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&flagExportForce, "force", false, "Overwrite differing files at the destination")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	e, err := openCatalog().Lookup(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	destRoot, err := config.ExpandPath(args[1])
	if err != nil {
		return err
	}

	src := filepath.Dir(e.DocumentPath)
	dst := filepath.Join(destRoot, e.DirectoryName)
	var result *exporter.Result
	err = withExportLock(cmd.Context(), exportLockTimeout, func() error {
		var err error
		result, err = exporter.ExportDir(src, dst, exporter.Options{
			Excludes: settings.Excludes,
			Force:    flagExportForce,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	printExportResult(cmd.OutOrStdout(), e.DirectoryName, dst, result)
	return nil
}

func printExportResult(w io.Writer, name, dst string, r *exporter.Result) {
	printOK(w, name, fmt.Sprintf("exported to %s", dst))
	printInfo(w, "", fmt.Sprintf("%d copied, %d linked, %d unchanged, %d overwritten, %d excluded",
		r.Copied, r.Links, r.Skipped, r.Overwritten, r.Excluded))
	for _, c := range r.Conflicts {
		printWarn(w, "", fmt.Sprintf("conflict: kept %s, new version at %s", c.Existing, c.Conflict))
	}
	if len(r.Conflicts) > 0 {
		fmt.Fprintln(w, "     Review the .conflict-* files, or re-run with --force to overwrite.")
	}
}

// withExportLock runs fn while holding the per-user export lock, waiting up
// to timeout for another skillbook export to finish.
func withExportLock(ctx context.Context, timeout time.Duration, fn func() error) error {
	lockPath, err := stateFile("export.lock")
	if err != nil {
		return err
	}
	l := flock.New(lockPath)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	locked, err := l.TryLockContext(ctx, exportLockRetry)
	if !locked {
		if err == nil || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("another export is in progress (lock: %s)", lockPath)
		}
		return fmt.Errorf("cannot acquire export lock: %w", err)
	}
	defer func() { _ = l.Unlock() }()

	logger.G(ctx).WithField("lock", lockPath).Debug("export lock held")
	return fn()
}

// stateFile returns a path for name in the first writable skillbook state
// directory: the user cache dir, then ~/.skillbook.
func stateFile(name string) (string, error) {
	for _, dir := range stateDirs() {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			return filepath.Join(dir, name), nil
		}
	}
	return "", fmt.Errorf("cannot determine writable state directory for %s", name)
}

func stateDirs() []string {
	var dirs []string
	if cache, err := os.UserCacheDir(); err == nil && cache != "" {
		dirs = append(dirs, filepath.Join(cache, "skillbook"))
	}
	if dir, err := config.Dir(); err == nil {
		dirs = append(dirs, dir)
	}
	return dirs
}
