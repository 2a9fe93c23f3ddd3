package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/Norgate-AV/winspect/internal/window"
)

var (
	createdStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	destroyedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// ChangeEvent is a window change stamped with the poll that observed it.
type ChangeEvent struct {
	Time time.Time `json:"time" yaml:"time"`
	window.Change `yaml:",inline"`
}

// Changes streams one batch of window changes. JSON is written one event per
// line and YAML one document per batch, so the output can be piped while the
// watch is still running.
func (p *Printer) Changes(at time.Time, changes []window.Change) error {
	if len(changes) == 0 {
		return nil
	}

	events := make([]ChangeEvent, 0, len(changes))
	for _, c := range changes {
		events = append(events, ChangeEvent{Time: at, Change: c})
	}

	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		for _, e := range events {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		out, err := yaml.Marshal(events)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = fmt.Fprintf(p.w, "---\n%s", out)
		return err
	}

	for _, e := range events {
		mark := createdStyle.Render("+")
		if !e.Created {
			mark = destroyedStyle.Render("-")
		}

		if _, err := fmt.Fprintf(p.w, "%s %s %s %q\n", e.Time.Format(time.TimeOnly), mark, e.Handle, e.Title); err != nil {
			return err
		}
	}

	return nil
}
