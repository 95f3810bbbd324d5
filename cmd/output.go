package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// All commands use these functions to ensure consistent icon usage and
// indentation throughout skillbook's CLI output.
//
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure
//   ⚠  warning
//   -  not found / missing
//   ~  neutral info

const maxRuleWidth = 80

var (
	headerColor = color.New(color.Bold, color.FgMagenta)
	titleColor  = color.New(color.Bold)
	ruleColor   = color.New(color.FgCyan)
	labelColor  = color.New(color.FgCyan)
	descColor   = color.New(color.FgGreen)
	verColor    = color.New(color.FgYellow)
	okColor     = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	errColor    = color.New(color.FgRed, color.Bold)
)

// applyColorMode forces colour on or off; "auto" leaves fatih/color's
// terminal and NO_COLOR detection in charge.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

// ruleWidth is the terminal width capped at maxRuleWidth.
func ruleWidth() int {
	if w := terminalWidth(); w > 0 && w < maxRuleWidth {
		return w
	}
	return maxRuleWidth
}

// printRule prints a full-width "=" separator.
func printRule(w io.Writer) {
	ruleColor.Fprintln(w, strings.Repeat("=", ruleWidth()))
}

// printSection prints a blank line, a bold title and a rule.
func printSection(w io.Writer, title string) {
	fmt.Fprintln(w)
	headerColor.Fprintln(w, title)
	printRule(w)
	fmt.Fprintln(w)
}

// printField prints an indented "Label: value" line.
func printField(w io.Writer, c *color.Color, label, value string) {
	fmt.Fprintf(w, "   %s %s\n", c.Sprint(label+":"), value)
}

func iconLine(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
	} else {
		fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
	}
}

// printOK prints a success line.
//
//	name = "" → "  ✓  msg"
//	name set  → "  ✓  [name] msg"
func printOK(w io.Writer, name, msg string) {
	iconLine(w, okColor.Sprint("✓"), name, msg)
}

// printErr prints an error line.
func printErr(w io.Writer, name, msg string) {
	iconLine(w, errColor.Sprint("✗"), name, msg)
}

// printWarn prints a warning line.
func printWarn(w io.Writer, name, msg string) {
	iconLine(w, warnColor.Sprint("⚠"), name, msg)
}

// printMiss prints a not-found / missing line.
func printMiss(w io.Writer, name, msg string) {
	iconLine(w, "-", name, msg)
}

// printInfo prints a neutral informational line.
func printInfo(w io.Writer, name, msg string) {
	iconLine(w, labelColor.Sprint("~"), name, msg)
}
