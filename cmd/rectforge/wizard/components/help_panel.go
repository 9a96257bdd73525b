package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/rectforge/cmd/rectforge/wizard/help"
)

var (
	helpTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")).
		Bold(true)

	helpDescStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	helpDetailStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))
)

// HelpPanel shows the help text of the focused form field.
type HelpPanel struct {
	field string
	width int
}

func NewHelpPanel() *HelpPanel {
	return &HelpPanel{width: 60}
}

// SetField selects the field whose help is displayed.
func (h *HelpPanel) SetField(field string) {
	h.field = field
}

func (h *HelpPanel) SetWidth(width int) {
	if width > 20 {
		h.width = width
	}
}

func (h *HelpPanel) View() string {
	style := PanelStyle.Padding(1, 2).Width(h.width - 4)

	text, ok := help.Texts[h.field]
	if !ok {
		return style.Render("Select a field to see help")
	}

	var sb strings.Builder
	sb.WriteString(helpTitleStyle.Render(text.Title))
	sb.WriteString("\n\n")
	sb.WriteString(helpDescStyle.Render(text.Description))
	if text.Details != "" {
		sb.WriteString("\n\n")
		sb.WriteString(helpDetailStyle.Render(text.Details))
	}
	return style.Render(sb.String())
}
