package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SKILLBOOK"

// Settings are the effective options of one invocation.
type Settings struct {
	Root      string
	Color     string
	LogLevel  string
	LogFormat string
	Excludes  []string
}

// flagKeys maps command-line flag names to settings keys.
var flagKeys = map[string]string{
	"root":       "root",
	"color":      "color",
	"log-level":  "log_level",
	"log-format": "log_format",
}

// Resolve computes the effective settings. Sources, lowest precedence first:
// built-in defaults, config.yaml, ~/.skillbook/.env, SKILLBOOK_* environment
// variables, and flags explicitly set on the command line.
func Resolve(flags *pflag.FlagSet) (*Settings, error) {
	cfg, err := LoadOrDefault()
	if err != nil {
		return nil, err
	}
	dotenv, err := LoadDotEnv()
	if err != nil {
		return nil, err
	}
	return resolve(cfg, dotenv, flags)
}

func resolve(cfg *Config, dotenv map[string]string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetDefault("root", cfg.Root)
	v.SetDefault("color", orDefault(cfg.Color, "auto"))
	v.SetDefault("log_level", orDefault(cfg.LogLevel, "warn"))
	v.SetDefault("log_format", "fmt")
	v.SetDefault("excludes", cfg.Excludes)

	for _, key := range flagKeys {
		if val := dotenv[envPrefix+"_"+strings.ToUpper(key)]; val != "" {
			v.SetDefault(key, val)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("cannot bind flag --%s: %w", name, err)
			}
		}
	}

	s := &Settings{
		Root:      v.GetString("root"),
		Color:     strings.ToLower(v.GetString("color")),
		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		Excludes:  v.GetStringSlice("excludes"),
	}

	switch s.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid color mode %q: expected auto, always or never", s.Color)
	}

	root, err := resolveRoot(s.Root)
	if err != nil {
		return nil, err
	}
	s.Root = root
	return s, nil
}

// resolveRoot expands ~ and makes root absolute; empty means the working directory.
func resolveRoot(root string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("cannot determine working directory: %w", err)
		}
		return wd, nil
	}
	expanded, err := ExpandPath(root)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("cannot resolve root %s: %w", root, err)
	}
	return abs, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
