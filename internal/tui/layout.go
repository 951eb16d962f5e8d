package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/daygrid/internal/tui/view"
)

// promptMaxContentLines caps the prompt box, suggestions included.
const promptMaxContentLines = 4

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	GridInnerW int // inside the grid border
	GridH      int // grid lines, border excluded

	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	PromptContentWidth int
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	boxW, _ := styles.GridBoxStyle.GetFrameSize()
	gridInnerW := max(0, innerW-boxW)

	promptWidth := view.PromptContentWidth(innerW, styles.PromptStyle)

	return LayoutCache{
		InnerW:             innerW,
		InnerH:             innerH,
		GridInnerW:         gridInnerW,
		GridH:              view.GridHeight(m.store.Granularity(), gridInnerW),
		PromptStyle:        styles.PromptStyle,
		PromptFocusedStyle: styles.PromptFocusedStyle,
		PromptContentWidth: promptWidth,
	}
}

// refreshLayout recomputes the layout after a size or unit change.
func (m *Model) refreshLayout() {
	m.layout = m.buildLayoutCache(m.width, m.height)
}
