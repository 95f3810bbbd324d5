package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kamusis/skillbook/internal/catalog"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <skill-name>",
	Short: "Show metadata and structure of a skill",
	Long: `Display a formatted summary of a skill: its header fields, the files in
its directory and the path of its SKILL.md.

Example:
  skillbook info swiftui-programming`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	e, err := openCatalog().Lookup(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printInfoSummary(cmd.OutOrStdout(), e)
	return nil
}

func printInfoSummary(w io.Writer, e catalog.Entry) {
	fmt.Fprintf(w, "📦 Skill: %s\n", titleColor.Sprint(e.DisplayName))
	fmt.Fprintf(w, "Directory:   %s\n", e.DirectoryName)
	fmt.Fprintf(w, "Version:     %s\n", e.Version)
	fmt.Fprintf(w, "Summary:     %s\n", e.Description)
	if e.Activation != "" {
		fmt.Fprintf(w, "Activation:  %s\n", e.Activation)
	}

	layout := inspectLayout(e)
	if len(layout.Files) > 0 {
		fmt.Fprintln(w, "\nFiles:")
		for _, f := range layout.Files {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	}
	if len(layout.Scripts) > 0 {
		fmt.Fprintln(w, "\nScripts:")
		for _, s := range layout.Scripts {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
	fmt.Fprintf(w, "\nPath: %s\n", e.DocumentPath)
}

// skillLayout is what a skill container holds around its document.
type skillLayout struct {
	Files   []string // top-level entries, annotated
	Scripts []string // runnable files below scripts/, slash-separated
}

var scriptExts = map[string]bool{
	".py": true, ".sh": true, ".bash": true, ".js": true, ".ts": true, ".rb": true, ".pl": true,
}

func inspectLayout(e catalog.Entry) skillLayout {
	dir := filepath.Dir(e.DocumentPath)
	return skillLayout{
		Files:   describeEntries(dir, e),
		Scripts: findScripts(dir),
	}
}

// describeEntries lists the visible top-level entries of dir. The document
// is labelled with the skill it defines and directories with their size.
func describeEntries(dir string, e catalog.Entry) []string {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, c := range children {
		name := c.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		switch {
		case name == catalog.DocumentName:
			out = append(out, fmt.Sprintf("%s (instructions for %s v%s)", name, e.DisplayName, e.Version))
		case c.IsDir():
			n, _ := doublestar.Glob(os.DirFS(filepath.Join(dir, name)), "**", doublestar.WithFilesOnly())
			out = append(out, fmt.Sprintf("%s/ (%d file(s))", name, len(n)))
		case strings.EqualFold(strings.TrimSuffix(name, filepath.Ext(name)), "readme"):
			out = append(out, name+" (readme)")
		default:
			out = append(out, name)
		}
	}
	return out
}

// findScripts returns the runnable files anywhere below dir/scripts: files
// with an execute bit, a "#!" line or a known script extension.
func findScripts(dir string) []string {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, "scripts/**", doublestar.WithFilesOnly())
	if err != nil {
		return nil
	}
	var out []string
	for _, m := range matches {
		if isScript(fsys, m) {
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out
}

func isScript(fsys fs.FS, name string) bool {
	if scriptExts[strings.ToLower(path.Ext(name))] {
		return true
	}
	if info, err := fs.Stat(fsys, name); err == nil && info.Mode()&0o111 != 0 {
		return true
	}
	f, err := fsys.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	magic := make([]byte, 2)
	n, _ := io.ReadFull(f, magic)
	return n == 2 && string(magic) == "#!"
}
