package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHeadlessManagerForce(t *testing.T) {
	t.Parallel()

	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("forced headless mode not reported")
	}

	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("forced interactive mode not reported")
	}

	// ClearForce reverts to TTY detection; under `go test` stdin is a
	// pipe, so detection reports headless.
	hm.ClearForce()
	if !hm.IsHeadless() {
		t.Error("expected headless without a TTY")
	}
}

func TestHeadlessSpinnerWritesLines(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	s := newHeadlessSpinner("creating project", &buf)
	s.SetTitle("initializing git")
	s.Stop()
	s.Stop()

	out := buf.String()
	for _, want := range []string{"creating project\n", "initializing git\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestReporterHeadlessSpinner(t *testing.T) {
	t.Parallel()

	hm := NewHeadlessManager()
	hm.ForceHeadless(true)

	var buf strings.Builder
	s := NewReporter(DefaultTheme(), hm, &buf).Spinner("working")
	if _, ok := s.(*headlessSpinner); !ok {
		t.Fatalf("got %T, want *headlessSpinner", s)
	}
	if !strings.Contains(buf.String(), "working") {
		t.Errorf("spinner output %q missing title", buf.String())
	}
}

func TestSpinnerModelUpdate(t *testing.T) {
	t.Parallel()

	theme := &Theme{Colors: ColorPalette{Primary: "#9575CD"}}
	m := newSpinnerModel(theme, "working")

	t.Run("title_message", func(t *testing.T) {
		updated, _ := m.Update(spinnerTitleMsg("next phase"))
		sm := updated.(spinnerModel)
		if !strings.Contains(sm.View(), "next phase") {
			t.Errorf("view %q missing updated title", sm.View())
		}
	})

	t.Run("stop_message_quits", func(t *testing.T) {
		updated, cmd := m.Update(spinnerStopMsg{})
		sm := updated.(spinnerModel)
		if !sm.done {
			t.Error("model not done after stop message")
		}
		if sm.View() != "" {
			t.Errorf("done view = %q, want empty", sm.View())
		}
		if cmd == nil {
			t.Fatal("expected a quit command")
		}
	})

	t.Run("ctrl_c_quits", func(t *testing.T) {
		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		sm := updated.(spinnerModel)
		if !sm.done {
			t.Error("model not done after ctrl+c")
		}
		if cmd == nil {
			t.Fatal("expected a quit command")
		}
	})
}

func TestDefaultThemeNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !DefaultTheme().NoColor {
		t.Error("NO_COLOR not honored")
	}
}
