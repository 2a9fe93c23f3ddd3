package output

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Norgate-AV/winspect/internal/window"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.Render()
}

// WindowRow is the summary of one window shown in listings.
type WindowRow struct {
	Handle  window.Handle `json:"handle" yaml:"handle"`
	Title   string        `json:"title" yaml:"title"`
	Class   string        `json:"class_name" yaml:"class_name"`
	Rect    window.Rect   `json:"rect" yaml:"rect"`
	Visible bool          `json:"visible" yaml:"visible"`
	PID     uint32        `json:"pid" yaml:"pid"`
}

// Row reads the summary of w. It fails if w has gone away.
func Row(w window.Window) (WindowRow, error) {
	title, err := w.Title()
	if err != nil {
		return WindowRow{}, err
	}

	class, err := w.ClassName()
	if err != nil {
		return WindowRow{}, err
	}

	rect, err := w.Rect()
	if err != nil {
		return WindowRow{}, err
	}

	pid, err := w.ProcessID()
	if err != nil {
		return WindowRow{}, err
	}

	return WindowRow{
		Handle:  w.Handle(),
		Title:   title,
		Class:   class,
		Rect:    rect,
		Visible: w.IsVisible(),
		PID:     pid,
	}, nil
}

// Rows summarises each window, leaving out those that vanish while being read.
func Rows(windows []window.Window) []WindowRow {
	rows := make([]WindowRow, 0, len(windows))
	for _, w := range windows {
		r, err := Row(w)
		if err != nil {
			continue
		}

		rows = append(rows, r)
	}

	return rows
}

// Windows renders a window listing.
func (p *Printer) Windows(windows []window.Window) error {
	rows := Rows(windows)
	if p.format != FormatTable {
		return p.Value(rows)
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.Handle.String(),
			r.Title,
			r.Class,
			r.Rect.String(),
			yesNo(r.Visible),
			strconv.FormatUint(uint64(r.PID), 10),
		})
	}

	_, err := fmt.Fprintln(p.w, newTable([]string{"HANDLE", "TITLE", "CLASS", "RECT", "VISIBLE", "PID"}, cells))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(p.w, "%d window(s)\n", len(rows))
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
