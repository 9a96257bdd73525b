package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/rectforge/cmd/rectforge/wizard/components"
	"github.com/mrsinham/rectforge/cmd/rectforge/wizard/types"
	"github.com/mrsinham/rectforge/internal/export"
)

// PreviewAction is the action chosen on the preview screen.
type PreviewAction int

const (
	// PreviewActionBack returns to the settings form
	PreviewActionBack PreviewAction = iota
	// PreviewActionWrite writes the batch and exits
	PreviewActionWrite
	// PreviewActionSaveConfig saves the settings to a YAML file
	PreviewActionSaveConfig
	// PreviewActionCancel exits without writing
	PreviewActionCancel
)

const (
	actionBack       = "back"
	actionWrite      = "write"
	actionSaveConfig = "save_config"
	actionCancel     = "cancel"
)

// PreviewScreen shows the generated batch before it is written.
type PreviewScreen struct {
	form      *huh.Form
	settings  *types.Settings
	doc       export.Document
	action    string
	notice    string
	done      bool
	cancelled bool
}

// NewPreviewScreen renders doc, generated from settings. notice, when not
// empty, is shown above the actions (e.g. after saving a config).
func NewPreviewScreen(settings *types.Settings, doc export.Document, notice string) *PreviewScreen {
	s := &PreviewScreen{
		settings: settings,
		doc:      doc,
		action:   actionWrite,
		notice:   notice,
	}

	target := "terminal"
	if settings.Output != "" && settings.Output != "-" {
		target = settings.Output
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("Select an action").
				Options(
					huh.NewOption(fmt.Sprintf("Write %s to %s", settings.Format, target), actionWrite),
					huh.NewOption("Save configuration to YAML", actionSaveConfig),
					huh.NewOption("Back to edit", actionBack),
					huh.NewOption("Cancel and exit", actionCancel),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

func (s *PreviewScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *PreviewScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.action = actionBack
			s.done = true
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

func (s *PreviewScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	var table strings.Builder
	if err := export.Write(&table, export.Table, s.doc); err != nil {
		table.WriteString(err.Error())
	}

	parts := []string{
		components.TitleStyle.Render("PREVIEW - Generated Batch"),
		table.String(),
		components.CommandStyle.Render(CLICommand(s.settings)),
		"",
	}
	if s.notice != "" {
		parts = append(parts, components.SuccessStyle.Render(s.notice), "")
	}
	parts = append(parts,
		s.form.View(),
		"",
		components.SubtitleStyle.Render("Enter: Select action | Esc: Back"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *PreviewScreen) Done() bool {
	return s.done
}

func (s *PreviewScreen) Cancelled() bool {
	return s.cancelled
}

// Action returns the selected action. It is meaningful once Done is true.
func (s *PreviewScreen) Action() PreviewAction {
	switch s.action {
	case actionWrite:
		return PreviewActionWrite
	case actionSaveConfig:
		return PreviewActionSaveConfig
	case actionCancel:
		return PreviewActionCancel
	default:
		return PreviewActionBack
	}
}

// CLICommand returns the rectforge invocation equivalent to settings.
// Custom params have no flag form and are left out.
func CLICommand(settings *types.Settings) string {
	args := []string{"rectforge", fmt.Sprintf("--seed %d", settings.Seed)}
	if settings.Preset != "" {
		args = append(args, "--preset "+settings.Preset)
	}
	if settings.Algorithm != "" {
		args = append(args, "--algorithm "+settings.Algorithm)
	}
	if settings.Format != "" {
		args = append(args, "--format "+settings.Format)
	}
	if settings.Output != "" && settings.Output != "-" {
		args = append(args, fmt.Sprintf("--output %q", settings.Output))
	}
	if settings.Summary {
		args = append(args, "--summary")
	}
	return strings.Join(args, " ")
}
