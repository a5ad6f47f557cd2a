package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type interactiveModel struct {
	err   error
	log   *zap.Logger
	table string
	input textinput.Model
	last  string
}

func newInteractiveModel(log *zap.Logger) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "(option<(i64, bool)>, (u8, f32))"
	ti.Prompt = "layout> "
	ti.Width = 60
	ti.Focus()
	return &interactiveModel{log: log, input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+u":
			m.input.SetValue("")
		}

	case tea.WindowSizeMsg:
		if w := msg.Width - len(m.input.Prompt) - 2; w > 20 {
			m.input.Width = w
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh re-parses the expression when it changed.
func (m *interactiveModel) refresh() {
	src := strings.TrimSpace(m.input.Value())
	if src == m.last {
		return
	}
	m.last = src
	m.err = nil
	m.table = ""
	if src == "" {
		return
	}

	n, err := parseExpr(src)
	if err != nil {
		m.err = err
		return
	}
	m.log.Debug("parsed expression", zap.String("layout", n.String()), zap.Int("size", n.Size))
	m.table = renderStyled(n)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Bridge Layout"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.table != "":
		b.WriteString(m.table)
	default:
		b.WriteString(helpStyle.Render("types: bool u8 i8 u16 i16 u32 i32 f32 char u64 i64 f64 usize handle"))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("compose: (a, b)  (name: a)  ()  option<a>"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+u clear • esc quit"))
	return b.String()
}
