package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kamusis/skillbook/internal/catalog"
	"github.com/kamusis/skillbook/internal/clipboard"
	"github.com/kamusis/skillbook/internal/config"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and report skills that cannot be listed",
	Long: `Check that skillbook's configuration is valid, that the skills root exists,
and that every <name>-skill directory holds a readable SKILL.md. Directories
that fail these checks are silently left out of list, search and show.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	allOK := true

	printSection(w, "skillbook doctor")

	// ── Check 1: config file ──────────────────────────────────────────────────
	fmt.Fprintln(w, "[ config ]")
	cfgPath, _ := config.ConfigPath()
	if _, err := config.Load(); err != nil {
		if _, statErr := os.Stat(cfgPath); os.IsNotExist(statErr) {
			printWarn(w, "", "no config file — using defaults (run 'skillbook init' to create one)")
		} else {
			printErr(w, "", err.Error())
			allOK = false
		}
	} else {
		printOK(w, "", fmt.Sprintf("valid YAML: %s", cfgPath))
	}
	fmt.Fprintln(w)

	// ── Check 2: skills root and containers ───────────────────────────────────
	fmt.Fprintln(w, "[ skills ]")
	if !checkSkills(w, settings.Root) {
		allOK = false
	}
	fmt.Fprintln(w)

	// ── Check 3: clipboard ────────────────────────────────────────────────────
	fmt.Fprintln(w, "[ clipboard ]")
	if clipboard.Available() {
		printOK(w, "", "clipboard utility found")
	} else {
		printWarn(w, "", "no clipboard utility found — 'skillbook copy' will print a manual command instead")
	}
	fmt.Fprintln(w)

	// ── Summary ───────────────────────────────────────────────────────────────
	printRule(w)
	if !allOK {
		return fmt.Errorf("doctor found issues")
	}
	okColor.Fprintln(w, "✓  All checks passed.")
	return nil
}

// checkSkills reports on every skill container under root. It returns false
// when the root is unusable or a SKILL.md cannot be read.
func checkSkills(w io.Writer, root string) bool {
	info, err := os.Stat(root)
	if err != nil {
		printErr(w, "", fmt.Sprintf("skills root not accessible: %v", err))
		return false
	}
	if !info.IsDir() {
		printErr(w, "", fmt.Sprintf("skills root is not a directory: %s", root))
		return false
	}
	printOK(w, "", fmt.Sprintf("skills root: %s", root))

	names, err := catalog.New(root).Containers()
	if err != nil {
		printErr(w, "", fmt.Sprintf("cannot list skills root: %v", err))
		return false
	}

	ok := true
	readable := 0
	for _, name := range names {
		docPath := filepath.Join(root, name, catalog.DocumentName)
		if _, err := os.Stat(docPath); err != nil {
			printMiss(w, name, fmt.Sprintf("no %s — not listed", catalog.DocumentName))
			continue
		}
		content, err := catalog.ReadDocument(docPath)
		if err != nil {
			printErr(w, name, fmt.Sprintf("unreadable: %v", err))
			ok = false
			continue
		}
		if catalog.HasUnclosedHeader(content) {
			printWarn(w, name, "header is never closed with '---' — the whole file is read as header")
		}
		readable++
	}
	printInfo(w, "", fmt.Sprintf("%d of %d skill director(ies) readable", readable, len(names)))
	return ok
}
