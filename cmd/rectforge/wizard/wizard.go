// Package wizard provides an interactive TUI for configuring a generation run.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mrsinham/rectforge/cmd/rectforge/wizard/components"
	"github.com/mrsinham/rectforge/cmd/rectforge/wizard/screens"
	"github.com/mrsinham/rectforge/cmd/rectforge/wizard/types"
	"github.com/mrsinham/rectforge/internal/app"
)

// ErrAborted is returned by Run when the user leaves the wizard without
// writing a batch.
var ErrAborted = errors.New("wizard aborted")

// Phase is the screen currently shown.
type Phase int

const (
	PhaseSettings Phase = iota
	PhasePreview
	PhaseSaveConfig
)

// Wizard is the bubbletea model driving the screens.
type Wizard struct {
	settings *types.Settings
	phase    Phase

	settingsScreen *screens.SettingsScreen
	previewScreen  *screens.PreviewScreen

	saveConfigForm *huh.Form
	configPath     string

	cancelled bool
	finished  bool
	err       error
}

// NewWizard starts on the settings screen. A nil settings starts from
// defaults.
func NewWizard(settings *types.Settings) *Wizard {
	if settings == nil {
		settings = &types.Settings{}
	}
	return &Wizard{
		settings:       settings,
		phase:          PhaseSettings,
		settingsScreen: screens.NewSettingsScreen(settings),
	}
}

func (w *Wizard) Init() tea.Cmd {
	return w.settingsScreen.Init()
}

func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch w.phase {
	case PhaseSettings:
		return w.updateSettings(msg)
	case PhasePreview:
		return w.updatePreview(msg)
	case PhaseSaveConfig:
		return w.updateSaveConfig(msg)
	}
	return w, nil
}

func (w *Wizard) View() string {
	switch w.phase {
	case PhaseSettings:
		return w.settingsScreen.View()
	case PhasePreview:
		return w.previewScreen.View()
	case PhaseSaveConfig:
		return w.viewSaveConfig()
	}
	return ""
}

func (w *Wizard) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.settingsScreen.Update(msg)
	if ss, ok := model.(*screens.SettingsScreen); ok {
		w.settingsScreen = ss
	}

	if w.settingsScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.settingsScreen.Done() {
		return w.transitionToPreview("")
	}

	return w, cmd
}

func (w *Wizard) transitionToPreview(notice string) (tea.Model, tea.Cmd) {
	resolved, err := Resolve(w.settings)
	if err != nil {
		w.err = err
		return w, tea.Quit
	}

	w.phase = PhasePreview
	w.previewScreen = screens.NewPreviewScreen(w.settings, app.Document(resolved), notice)
	return w, w.previewScreen.Init()
}

func (w *Wizard) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.previewScreen.Update(msg)
	if ps, ok := model.(*screens.PreviewScreen); ok {
		w.previewScreen = ps
	}

	if w.previewScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.previewScreen.Done() {
		switch w.previewScreen.Action() {
		case screens.PreviewActionBack:
			w.phase = PhaseSettings
			w.settingsScreen = screens.NewSettingsScreen(w.settings)
			return w, w.settingsScreen.Init()

		case screens.PreviewActionWrite:
			w.finished = true
			return w, tea.Quit

		case screens.PreviewActionSaveConfig:
			return w.transitionToSaveConfig()

		case screens.PreviewActionCancel:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

func (w *Wizard) transitionToSaveConfig() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaveConfig
	if w.configPath == "" {
		w.configPath = "rectforge.yaml"
	}

	w.saveConfigForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("config_path").
				Title("Save configuration to").
				Description("Path of the YAML config file").
				Value(&w.configPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return w, w.saveConfigForm.Init()
}

func (w *Wizard) updateSaveConfig(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return w.transitionToPreview("")
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.saveConfigForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveConfigForm = f
	}

	if w.saveConfigForm.State == huh.StateCompleted {
		if err := SaveToYAML(w.settings, w.configPath); err != nil {
			w.err = err
			return w, tea.Quit
		}
		return w.transitionToPreview("Configuration saved to " + w.configPath)
	}

	return w, cmd
}

func (w *Wizard) viewSaveConfig() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Save Configuration"),
		w.saveConfigForm.View(),
		"",
		components.SubtitleStyle.Render("Enter: Save | Esc: Back"),
	)
}

// Run shows the wizard, optionally pre-filled from a YAML config, and
// writes the resulting batch to its output file or stdout.
func Run(fromConfig string, stdout io.Writer) error {
	var settings *types.Settings

	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		settings = loaded
	}

	wizard := NewWizard(settings)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	w, ok := finalModel.(*Wizard)
	if !ok {
		return fmt.Errorf("unexpected wizard model %T", finalModel)
	}
	return w.finish(stdout)
}

// finish writes the batch once the program has exited.
func (w *Wizard) finish(stdout io.Writer) error {
	if w.err != nil {
		return w.err
	}
	if w.cancelled || !w.finished {
		return ErrAborted
	}

	resolved, err := Resolve(w.settings)
	if err != nil {
		return err
	}
	res, err := app.Run(resolved, stdout)
	if err != nil {
		return err
	}

	if res.Path != "" {
		fmt.Fprintln(stdout, components.SuccessStyle.Render("✓ Generation complete!"))
		fmt.Fprintf(stdout, "  Wrote %s to %s\n", humanize.Bytes(uint64(res.Bytes)), res.Path)
		fmt.Fprintf(stdout, "  Equivalent command: %s\n", screens.CLICommand(w.settings))
	}
	return nil
}
