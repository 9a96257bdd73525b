package screens

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/rectforge/cmd/rectforge/wizard/components"
	"github.com/mrsinham/rectforge/cmd/rectforge/wizard/types"
	"github.com/mrsinham/rectforge/internal/export"
	"github.com/mrsinham/rectforge/internal/rect"
	"github.com/mrsinham/rectforge/internal/rng"
)

// SettingsScreen edits the generation settings.
type SettingsScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	settings  *types.Settings
	done      bool
	cancelled bool

	// huh binds inputs to strings
	seedStr string
}

// NewSettingsScreen builds the form around settings, filling in defaults
// for empty fields.
func NewSettingsScreen(settings *types.Settings) *SettingsScreen {
	if settings.Preset == "" {
		settings.Preset = string(rect.DefaultPreset)
	}
	if settings.Algorithm == "" {
		settings.Algorithm = string(rng.DefaultAlgorithm)
	}
	if settings.Format == "" {
		settings.Format = string(export.DefaultFormat)
	}

	s := &SettingsScreen{
		helpPanel: components.NewHelpPanel(),
		settings:  settings,
		seedStr:   strconv.FormatInt(settings.Seed, 10),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("seed").
				Title("Seed").
				Value(&s.seedStr).
				Validate(ValidateSeed),

			huh.NewSelect[string]().
				Key("preset").
				Title("Preset").
				Options(options(rect.AllPresets())...).
				Value(&settings.Preset),

			huh.NewSelect[string]().
				Key("algorithm").
				Title("Algorithm").
				Options(options(rng.AllAlgorithms())...).
				Value(&settings.Algorithm),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("format").
				Title("Format").
				Options(options(export.AllFormats())...).
				Value(&settings.Format),

			huh.NewInput().
				Key("output").
				Title("Output File").
				Placeholder("stdout").
				Value(&settings.Output),

			huh.NewConfirm().
				Key("summary").
				Title("Include summary?").
				Value(&settings.Summary),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func options[T ~string](values []T) []huh.Option[string] {
	opts := make([]huh.Option[string], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(string(v), string(v))
	}
	return opts
}

// ValidateSeed accepts decimal signed 32-bit integers.
func ValidateSeed(s string) error {
	if _, err := strconv.ParseInt(s, 10, 32); err != nil {
		return fmt.Errorf("must be an integer between -2147483648 and 2147483647")
	}
	return nil
}

func (s *SettingsScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *SettingsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.helpPanel.SetWidth(msg.Width / 2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
		s.syncSettingsFromForm()
	}

	return s, cmd
}

func (s *SettingsScreen) syncSettingsFromForm() {
	if n, err := strconv.ParseInt(s.seedStr, 10, 32); err == nil {
		s.settings.Seed = n
	}
}

func (s *SettingsScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("RECTFORGE WIZARD - Settings"),
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		components.SubtitleStyle.Render("Tab: Next field | Enter: Submit | Esc: Cancel"),
	)
}

func (s *SettingsScreen) Done() bool {
	return s.done
}

func (s *SettingsScreen) Cancelled() bool {
	return s.cancelled
}
