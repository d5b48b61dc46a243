package components

import (
	"github.com/Veraticus/securebank-console/internal/console"
	"github.com/Veraticus/securebank-console/internal/tui/themes"
)

// renderStatus renders a slot's in-flight or failure line. Idle and succeeded slots
// render nothing.
func renderStatus[T any](theme themes.Theme, slot console.Slot[T], pending string) string {
	switch slot.Status {
	case console.StatusPending:
		return theme.StatusPending.Render("⟳ " + pending)
	case console.StatusFailed:
		msg := "request failed"
		if slot.Err != nil {
			msg = slot.Err.Error()
		}
		line := theme.StatusError.Render("✗ " + msg)
		if slot.Has {
			line += theme.Label.Render("  (showing last result)")
		}
		return line
	default:
		return ""
	}
}

func activeVersionLabel(version string) string {
	if version == "" {
		return "(none, set one on the Dataset tab)"
	}
	return version
}

// spacer is a blank line that joinNonEmpty keeps.
const spacer = " "

func joinNonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
