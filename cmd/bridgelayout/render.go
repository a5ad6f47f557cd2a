package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wippyai/bridge/layout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// report is the machine-readable form of one expression's layout.
type report struct {
	Expr  string       `json:"expr"`
	Size  int          `json:"size"`
	Slots []slotReport `json:"slots"`
}

type slotReport struct {
	Path   string `json:"path"`
	Type   string `json:"type"`
	Kind   string `json:"kind"`
	Offset int    `json:"offset"`
	Size   int    `json:"size"`
}

func newReport(n layout.Node) report {
	r := report{Expr: n.String(), Size: n.Size}
	for _, s := range layout.Slots(n) {
		r.Slots = append(r.Slots, slotReport{
			Path:   s.Path,
			Type:   s.Name,
			Kind:   s.Kind.String(),
			Offset: s.Offset,
			Size:   s.Size,
		})
	}
	return r
}

// renderStyled draws the slot table with lipgloss for a terminal.
func renderStyled(n layout.Node) string {
	r := newReport(n)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(typeStyle).
		Headers("OFFSET", "SIZE", "TYPE", "PATH").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, s := range r.Slots {
		t.Row(strconv.Itoa(s.Offset), strconv.Itoa(s.Size), s.Type, s.Path)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(r.Expr))
	b.WriteString(" ")
	b.WriteString(typeStyle.Render(fmt.Sprintf("SIZE %d", r.Size)))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

// writePlain prints the slot table as aligned text for pipes and files.
func writePlain(w io.Writer, n layout.Node) {
	r := newReport(n)
	fmt.Fprintf(w, "%s SIZE %d\n", r.Expr, r.Size)
	for _, s := range r.Slots {
		fmt.Fprintf(w, "  [%3d, %3d) %-6s %s\n", s.Offset, s.Offset+s.Size, s.Type, s.Path)
	}
}
