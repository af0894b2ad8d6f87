package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dotplain/dotplain/pkg/glyph"
)

// barWidth is the character width of the progress bar.
const barWidth = 40

// progressMsg carries a generation progress update in [0, 1].
type progressMsg float64

// generatedMsg carries the finished table.
type generatedMsg struct {
	table *glyph.Table
}

// =============================================================================
// fontgenModel - Generation progress bar
// =============================================================================

// fontgenModel is the bubbletea model for the fontgen progress bar.
type fontgenModel struct {
	percent float64
	table   *glyph.Table
}

// newFontgenModel creates a model at zero progress.
func newFontgenModel() fontgenModel {
	return fontgenModel{}
}

func (m fontgenModel) Init() tea.Cmd {
	return nil
}

func (m fontgenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case progressMsg:
		m.percent = float64(msg)
	case generatedMsg:
		m.table = msg.table
		m.percent = 1
		return m, tea.Quit
	}
	return m, nil
}

func (m fontgenModel) View() string {
	filled := int(m.percent * barWidth)
	if filled > barWidth {
		filled = barWidth
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Generating font table"))
	b.WriteString("\n")
	b.WriteString(styleBar.Render(strings.Repeat("█", filled)))
	b.WriteString(StyleDim.Render(strings.Repeat("░", barWidth-filled)))
	b.WriteString(fmt.Sprintf(" %3.0f%%", m.percent*100))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}
