package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamusis/skillbook/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [skills-root]",
	Short: "Write the default skillbook configuration",
	Long: `Create ~/.skillbook/config.yaml and a ~/.skillbook/.env template if they
do not exist yet. When skills-root is given it is stored as the default root.

Example:
  skillbook init ~/src/skills-collection`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	// ── 1. Create ~/.skillbook/ ───────────────────────────────────────────────
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK(w, "", fmt.Sprintf("config directory ready: %s", dir))

	// ── 2. Write config.yaml if missing ───────────────────────────────────────
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg := config.DefaultConfig()
		if len(args) == 1 {
			root, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("cannot resolve %s: %w", args[0], err)
			}
			cfg.Root = root
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK(w, "", fmt.Sprintf("wrote %s", cfgPath))
	} else {
		printInfo(w, "", fmt.Sprintf("%s already exists — left unchanged", cfgPath))
	}

	// ── 3. Write .env template if missing ─────────────────────────────────────
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	envPath, _ := config.DotEnvPath()
	printOK(w, "", fmt.Sprintf("environment template ready: %s", envPath))
	return nil
}
