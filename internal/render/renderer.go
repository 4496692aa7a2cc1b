// Package render implements the module-text template language: named
// conditional blocks ({{#var}} ... {{/var}}) and simple placeholders
// ({{var}}). The grammar does not support nested blocks. Rendering is
// best-effort: malformed input never produces an error, and no marker
// syntax survives into the output.
package render

import (
	"strings"

	"github.com/amandalowe/creditcoach/internal/domain"
)

// Render runs the two substitution phases over a template and
// normalizes the leftover whitespace: conditional blocks first, then
// placeholders, then collapsing of multi-whitespace runs plus a trim.
func Render(tmpl string, vars Vars) string {
	out := resolveBlocks(tmpl, vars)
	out = substitute(out, vars)
	return collapseWhitespace(out)
}

// resolveBlocks strips every {{#name}}/{{/name}} marker pair, keeping
// the enclosed text only when the named variable is truthy. Orphan
// markers are removed on their own; an unknown or absent variable
// counts as falsy, so its block disappears entirely.
func resolveBlocks(tmpl string, vars Vars) string {
	var b strings.Builder
	i := 0
	for i < len(tmpl) {
		open := strings.Index(tmpl[i:], "{{")
		if open < 0 {
			b.WriteString(tmpl[i:])
			break
		}
		open += i
		end := strings.Index(tmpl[open:], "}}")
		if end < 0 {
			b.WriteString(tmpl[i:])
			break
		}
		end += open
		inner := strings.TrimSpace(tmpl[open+2 : end])

		switch {
		case strings.HasPrefix(inner, "#"):
			b.WriteString(tmpl[i:open])
			name := strings.TrimSpace(inner[1:])
			closeIdx := findClose(tmpl, end+2, name)
			if closeIdx < 0 {
				// No matching close: drop the marker, keep scanning.
				i = end + 2
				continue
			}
			if truthy(vars, name) {
				// Keep the body; its close marker is consumed below
				// as an orphan.
				i = end + 2
			} else {
				i = closeIdx + len(closeMarkerText(tmpl, closeIdx))
			}
		case strings.HasPrefix(inner, "/"):
			// Close marker (matching a kept block, or orphaned).
			b.WriteString(tmpl[i:open])
			i = end + 2
		default:
			// Plain placeholder, handled in phase two.
			b.WriteString(tmpl[i : end+2])
			i = end + 2
		}
	}
	return b.String()
}

// findClose locates the {{/name}} marker for an open block, returning
// the index of its "{{" or -1.
func findClose(tmpl string, from int, name string) int {
	for i := from; i < len(tmpl); {
		open := strings.Index(tmpl[i:], "{{")
		if open < 0 {
			return -1
		}
		open += i
		end := strings.Index(tmpl[open:], "}}")
		if end < 0 {
			return -1
		}
		end += open
		inner := strings.TrimSpace(tmpl[open+2 : end])
		if strings.HasPrefix(inner, "/") && strings.TrimSpace(inner[1:]) == name {
			return open
		}
		i = end + 2
	}
	return -1
}

// closeMarkerText returns the literal close-marker text starting at
// idx so the caller can skip past it.
func closeMarkerText(tmpl string, idx int) string {
	end := strings.Index(tmpl[idx:], "}}")
	if end < 0 {
		return tmpl[idx:]
	}
	return tmpl[idx : idx+end+2]
}

// substitute replaces every {{name}} placeholder with the variable's
// string form, or empty string when the name is unknown.
func substitute(tmpl string, vars Vars) string {
	var b strings.Builder
	i := 0
	for i < len(tmpl) {
		open := strings.Index(tmpl[i:], "{{")
		if open < 0 {
			b.WriteString(tmpl[i:])
			break
		}
		open += i
		end := strings.Index(tmpl[open:], "}}")
		if end < 0 {
			b.WriteString(tmpl[i:])
			break
		}
		end += open
		b.WriteString(tmpl[i:open])
		name := strings.TrimSpace(tmpl[open+2 : end])
		if v, ok := vars[name]; ok {
			b.WriteString(v.String())
		}
		i = end + 2
	}
	return b.String()
}

// collapseWhitespace folds any run of two or more whitespace
// characters (typically left behind by removed blocks) into a single
// space and trims the ends.
func collapseWhitespace(s string) string {
	var b strings.Builder
	run := 0
	var last rune
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			run++
			last = r
			continue
		}
		if run == 1 {
			b.WriteRune(last)
		} else if run > 1 {
			b.WriteByte(' ')
		}
		run = 0
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func truthy(vars Vars, name string) bool {
	v, ok := vars[name]
	return ok && v.Truthy()
}

// Actions renders each action item of a module against vars.
func Actions(items []domain.ActionItem, vars Vars) []domain.RenderedAction {
	if len(items) == 0 {
		return nil
	}
	out := make([]domain.RenderedAction, 0, len(items))
	for _, it := range items {
		out = append(out, domain.RenderedAction{
			Text:     Render(it.Text, vars),
			Priority: Render(it.Priority, vars),
			Impact:   Render(it.Impact, vars),
		})
	}
	return out
}
