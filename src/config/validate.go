package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sofmeright/goaround-icons/src/icons"
)

// identifierRe matches valid item names: letter-first, alphanumeric + _ . -
var identifierRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_.\-]*$`)

// Validate checks structural invariants of a loaded Config.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs []string

	// ── Version ───────────────────────────────────────────────────────────

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("version: must be 1, got %d", cfg.Version))
	}

	// ── Render ────────────────────────────────────────────────────────────

	if cfg.Render.StrictColor {
		if err := icons.ValidateColor(cfg.Render.Color); err != nil {
			errs = append(errs, fmt.Sprintf("render.color: %v", err))
		}
	}
	if err := icons.ValidateRotation(cfg.Render.Rotation); err != nil {
		errs = append(errs, fmt.Sprintf("render.rotation: %v", err))
	}

	// ── Generate ──────────────────────────────────────────────────────────

	if cfg.Generate.Concurrency < 0 {
		errs = append(errs, fmt.Sprintf("generate.concurrency: must be >= 0, got %d", cfg.Generate.Concurrency))
	}

	names := make(map[string]bool)
	outputs := make(map[string]string)
	for i, item := range cfg.Generate.Items {
		ipath := fmt.Sprintf("generate.items[%d]", i)

		switch {
		case item.Name == "":
			errs = append(errs, fmt.Sprintf("%s: name is required", ipath))
		case !identifierRe.MatchString(item.Name):
			errs = append(errs, fmt.Sprintf("%s: name %q is not a valid identifier (must match [a-zA-Z][a-zA-Z0-9_.\\-]*)", ipath, item.Name))
		case names[item.Name]:
			errs = append(errs, fmt.Sprintf("%s: duplicate item name %q", ipath, item.Name))
		default:
			names[item.Name] = true
		}

		out := item.OutputPath(cfg.Generate.OutputDir)
		if prev, ok := outputs[out]; ok {
			errs = append(errs, fmt.Sprintf("%s: output %q already written by item %q", ipath, out, prev))
		} else {
			outputs[out] = item.Name
		}

		warnings = append(warnings, itemWarnings(item, ipath)...)

		if cfg.Render.StrictColor && item.Color != "" {
			if err := icons.ValidateColor(item.Color); err != nil {
				errs = append(errs, fmt.Sprintf("%s.color: %v", ipath, err))
			}
		}
		if item.Rotation != nil {
			if err := icons.ValidateRotation(*item.Rotation); err != nil {
				errs = append(errs, fmt.Sprintf("%s.rotation: %v", ipath, err))
			}
		}
	}

	// ── Server ────────────────────────────────────────────────────────────

	if cfg.Server.Listen == "" {
		errs = append(errs, "server.listen: must not be empty")
	}
	if cfg.Server.CacheMaxAge < 0 {
		errs = append(errs, fmt.Sprintf("server.cache_max_age: must be >= 0, got %d", cfg.Server.CacheMaxAge))
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return warnings, nil
}

// itemWarnings flags items that will silently render the default icon.
func itemWarnings(item IconItem, path string) []string {
	var warnings []string

	if item.Type != "" {
		if _, ok := icons.IconForType(item.Type); !ok {
			warnings = append(warnings, fmt.Sprintf("%s: unknown type designator %q", path, item.Type))
		}
	}
	if item.Category != "" {
		id, ok := icons.IconForCategory(item.Category)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: unknown emitter category %q", path, item.Category))
		} else if _, ok := icons.Lookup(id); !ok {
			warnings = append(warnings, fmt.Sprintf("%s: category %q maps to %q, which has no icon; default will be used", path, item.Category, id))
		}
	}
	if item.Type == "" && item.Category == "" {
		warnings = append(warnings, fmt.Sprintf("%s: neither type nor category set; default icon will be used", path))
	}
	return warnings
}
