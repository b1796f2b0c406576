package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/tinytelemetry/graphfin/internal/registry"
)

// helpContent lists the key bindings and the charts they reach.
func helpContent(keys KeyMap, reg *registry.Registry) string {
	var b strings.Builder
	b.WriteString(registry.HeaderTitle + "\n\n")

	for _, g := range keys.helpGroups() {
		b.WriteString(g.Title + ":\n")
		for _, binding := range g.Bindings {
			b.WriteString(helpLine(binding))
		}
		b.WriteString("\n")
	}

	b.WriteString("CHARTS:\n")
	for i, e := range reg.Entries() {
		fmt.Fprintf(&b, "  %d  %s %-18s %s\n", i+1, e.Icon, e.Tab, e.Kind)
	}
	b.WriteString("\nMOUSE:\n")
	b.WriteString("  Click a tab to open it, click the code button to toggle the\n")
	b.WriteString("  source panel, use the wheel to scroll code.\n")
	return b.String()
}

func helpLine(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("  %-14s - %s\n", h.Key, h.Desc)
}
