// Package output formats catalog listings and command results for the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/sofmeright/goaround-icons/src/generate"
	"github.com/sofmeright/goaround-icons/src/icons"
)

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
	colorHeader = "\033[2;36m"
)

func colorize(text, c string, color bool) string {
	if !color {
		return text
	}
	return c + text + colorReset
}

// isTerminal reports whether w is a character device. Buffers, pipes and
// regular files never are.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// UseColor returns true if colored output should be written to w.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal(w)
}

// CatalogTable lists every icon with its rotation behavior and the codes that map to it.
func CatalogTable(w io.Writer, color bool) {
	sec := NewSection(w, "Icons", 0, color)
	sec.Row("%-16s%6s  %-8s  %s", "icon", "scale", "rotates", "codes")

	byIcon := codesByIcon()
	for _, id := range icons.IDs() {
		def, _ := icons.Lookup(id)
		rotates := "yes"
		if def.NoRotate {
			rotates = "no"
		}
		codes := strings.Join(byIcon[id], " ")
		if codes == "" {
			codes = Dimmed("-", color)
		}
		sec.Row("%s%6.2f  %-8s  %s", colorize(fmt.Sprintf("%-16s", id), colorCyan, color), def.Scale, rotates, codes)
	}

	if dangling := icons.CheckIndexes(); len(dangling) > 0 {
		sec.Separator()
		for _, d := range dangling {
			sec.Row("%s %s", colorize("missing", colorYellow, color), d.String())
		}
	}
	sec.Close()
}

// codesByIcon inverts both indexes: icon id → sorted type codes then categories.
func codesByIcon() map[string][]string {
	out := make(map[string][]string)
	add := func(index map[string]string) {
		keys := make([]string, 0, len(index))
		for k := range index {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out[index[k]] = append(out[index[k]], k)
		}
	}
	add(icons.TypeCodes())
	add(icons.Categories())
	return out
}

// Resolution prints how a type/category pair resolved.
func Resolution(w io.Writer, typeDesignator, category string, color bool) {
	def := icons.Resolve(typeDesignator, category)

	sec := NewSection(w, "Resolve", 0, color)
	sec.Row("%-12s%s", "type", orDash(typeDesignator, color))
	sec.Row("%-12s%s", "category", orDash(category, color))
	sec.Row("%-12s%s", "via", resolvedVia(typeDesignator, category, def.ID))
	sec.Separator()
	sec.Row("%-12s%s", "icon", colorize(def.ID, colorBold, color))
	sec.Row("%-12s%dx%d (%s)", "size", def.Width, def.Height, def.ViewBox)
	sec.Row("%-12s%.2f", "scale", def.Scale)
	sec.Row("%-12s%t", "rotates", !def.NoRotate)
	sec.Close()
}

func resolvedVia(typeDesignator, category, id string) string {
	if typeDesignator != "" {
		if mapped, ok := icons.IconForType(typeDesignator); ok && mapped == id {
			return "type designator"
		}
	}
	if category != "" {
		if mapped, ok := icons.IconForCategory(category); ok {
			if mapped == id {
				return "emitter category"
			}
			return fmt.Sprintf("default (category maps to missing icon %q)", mapped)
		}
	}
	return "default"
}

func orDash(s string, color bool) string {
	if s == "" {
		return Dimmed("-", color)
	}
	return s
}

// GenerateResults prints one row per generated icon and returns the failure count.
// elapsed is shown in the section header.
func GenerateResults(w io.Writer, results []generate.Result, elapsed time.Duration, color bool) int {
	sec := NewSection(w, "Generate", elapsed, color)
	failed := 0
	for _, r := range results {
		status := "success"
		detail := fmt.Sprintf("%s → %s", r.Icon, r.Output)
		switch r.Status {
		case generate.StatusUnchanged:
			status = "skipped"
			detail += Dimmed(" (unchanged)", color)
		case generate.StatusFailed:
			status = "failed"
			failed++
			detail = colorize(r.Err.Error(), colorRed, color)
		}
		sec.Row("%-16s%s  %s", r.Name, StatusIcon(status, color), detail)
	}
	sec.Separator()
	sec.Row("%d icons, %d failed", len(results), failed)
	sec.Close()
	return failed
}
