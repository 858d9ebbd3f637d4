package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Wizard brand colors, dark-terminal values. Light pairs are set inline
// where the theme is built.
const (
	ColorPrimary   = "#9575CD"
	ColorSecondary = "#64B5F6"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// Run executes the wizard and returns the result.
// Each question runs as its own independent huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share a single viewport.
func Run(questions []Question) (*WizardResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &WizardResult{}
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]

		// Pre-check condition: skip questions whose condition is not met.
		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		g := buildQuestionGroup(q, result)
		form := huh.NewForm(g).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// buildQuestionGroup creates a huh.Group for a single question.
// Conditional questions use WithHideFunc to check visibility at runtime.
func buildQuestionGroup(q *Question, result *WizardResult) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, result)
	case QuestionTypeInput:
		field = buildInputField(q, result)
	}

	g := huh.NewGroup(field)

	// Apply conditional visibility.
	if q.Condition != nil {
		cond := q.Condition
		g = g.WithHideFunc(func() bool {
			return !cond(result)
		})
	}

	return g
}

// buildSelectField creates a huh.Select field for a select-type question.
//
// Options are attached with Options() rather than OptionsFunc: huh v0.8.x
// OptionsFunc forces s.height = defaultHeight (10) when no explicit height
// is set. Once s.height > 0, updateViewportHeight() resets viewport.YOffset
// to the selected index on every Update() call, scrolling options above the
// cursor out of view. Static options with no Height() call keep s.height at
// 0, so the viewport auto-sizes to the option count and never moves.
func buildSelectField(q *Question, result *WizardResult) *huh.Select[string] {
	var selected string

	// Set default value as initial selection.
	if q.Default != "" {
		selected = q.Default
	}

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	// Wire up value storage after each change.
	qID := q.ID
	sel.Validate(func(val string) error {
		saveAnswer(qID, val, result)
		return nil
	})

	return sel
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, result *WizardResult) *huh.Input {
	var value string
	if q.Default != "" {
		value = q.Default
	}

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	// Validation and value storage.
	qID := q.ID
	required := q.Required
	defVal := q.Default
	validate := q.Validate
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" && defVal != "" {
			v = defVal
		}
		if required && v == "" {
			return errors.New("this field is required")
		}
		if validate != nil {
			if err := validate(v); err != nil {
				return err
			}
		}
		saveAnswer(qID, v, result)
		return nil
	})

	return inp
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *WizardResult) {
	switch id {
	case "project_type":
		result.ProjectType = value
	case "project_name":
		result.ProjectName = value
	case "license":
		result.License = value
	case "author":
		result.Author = value
	case "docker":
		result.Docker = value == "true"
	case "venv":
		result.Venv = value == "true"
	case "npm_install":
		result.NPMInstall = value == "true"
	}
}

// newWizardTheme creates a huh.Theme with ezlay branding.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#512DA8", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#1565C0", Dark: ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(primary).Bold(true).MarginBottom(1)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.NextIndicator = t.Focused.NextIndicator.Foreground(primary)
	t.Focused.PrevIndicator = t.Focused.PrevIndicator.Foreground(primary)
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
