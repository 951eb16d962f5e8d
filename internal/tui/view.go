package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/daygrid/internal/plan"
	"github.com/javiermolinar/daygrid/internal/tui/view"
)

const appTitle = "daygrid"

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		ModalContent:     modal,
		ShowModal:        showModal,
		ModalBg:          m.styles.Modal.Bg,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layout
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	summary := m.store.Summary()
	gap := view.FillBackground("", layout.InnerW, 1, m.styles.colorBg)

	content := lipgloss.JoinVertical(lipgloss.Left,
		view.RenderHeader(m.headerViewState(layout, summary)),
		gap,
		m.renderGridBox(layout),
		gap,
		view.RenderPanel(m.panelViewState(layout)),
		gap,
		view.RenderFooter(m.footerViewState(layout, summary)),
	)
	app := m.styles.AppStyle.Render(content)
	return view.FillBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) headerViewState(layout LayoutCache, summary plan.Summary) view.HeaderModel {
	title := appTitle
	if m.loading {
		title += " (loading)"
	}
	return view.HeaderModel{
		InnerW:          layout.InnerW,
		Title:           title,
		Units:           plan.Granularities(),
		Current:         m.store.Granularity(),
		Full:            summary.Full,
		Over:            summary.Over,
		TitleStyle:      m.styles.TitleStyle,
		UnitStyle:       m.styles.UnitStyle,
		UnitActiveStyle: m.styles.UnitActiveStyle,
		FullBadgeStyle:  m.styles.FullBadgeStyle,
		OverBadgeStyle:  m.styles.OverBadgeStyle,
		Bg:              m.styles.colorBg,
	}
}

func (m Model) renderGridBox(layout LayoutCache) string {
	grid := view.RenderGrid(view.GridModel{
		InnerW:     layout.GridInnerW,
		Owners:     m.store.Grid(),
		Unit:       m.store.Granularity(),
		Selected:   m.selected,
		CellStyles: m.styles.CellStyles(m.store.Colors()),
		EmptyStyle: m.styles.EmptyCellStyle,
		LabelStyle: m.styles.GridLabelStyle,
		Bg:         m.styles.colorBg,
	})
	return m.styles.GridBoxStyle.Render(grid)
}

func (m Model) panelViewState(layout LayoutCache) view.PanelModel {
	cellStyles := m.styles.CellStyles(m.store.Colors())
	shares := m.store.Breakdown()
	rows := make([]view.PanelRow, len(shares))
	for i, s := range shares {
		rows[i] = view.PanelRow{
			Name:    s.Name,
			Hours:   s.Hours,
			Units:   s.Units,
			Percent: s.Percent,
			Swatch:  cellStyles[i],
		}
	}

	return view.PanelModel{
		InnerW:         layout.InnerW,
		Rows:           rows,
		Selected:       m.selected,
		CanIncrement:   m.store.CanIncrement(),
		RowStyle:       m.styles.RowStyle,
		SelectedStyle:  m.styles.RowSelectedStyle,
		MutedStyle:     m.styles.MutedStyle,
		ButtonStyle:    m.styles.ButtonStyle,
		ButtonOffStyle: m.styles.ButtonOffStyle,
		Bg:             m.styles.colorBg,
	}
}

func (m Model) footerViewState(layout LayoutCache, summary plan.Summary) view.FooterModel {
	summaryText := "Total: " + view.FormatHours(summary.Total) + " / 24h"
	if line := summary.FreeLine(); line != "" {
		summaryText += "  " + line
	}
	summaryText += "  " + summary.Message

	promptStyle := layout.PromptStyle
	if m.mode == ModePrompt {
		promptStyle = layout.PromptFocusedStyle
	}

	return view.FooterModel{
		InnerW:       layout.InnerW,
		SummaryText:  summaryText,
		StatusText:   m.statusMsgOrDefault(),
		HelpText:     m.renderHelp(),
		PromptLines:  m.promptLines(layout.PromptContentWidth),
		ShowPrompt:   m.mode == ModePrompt,
		SummaryStyle: m.styles.SummaryStyle,
		StatusStyle:  m.styles.StatusStyle,
		HelpStyle:    m.styles.HelpStyle,
		PromptStyle:  promptStyle,
		Bg:           m.styles.colorBg,
	}
}

func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	return m.statusMsg
}

// renderHelp renders the help bar.
func (m Model) renderHelp() string {
	switch m.mode {
	case ModePrompt:
		return "Enter: submit | Tab: complete | Esc: cancel"
	case ModeModal:
		if m.modalType == ModalConfirmDelete {
			return "y/Enter: delete | n/Esc: cancel"
		}
		return "Esc: close"
	default:
		return "j/k: select | h/l: -/+ | tab: unit | /: command | e/i: export/import | D: delete | ?: help | q: quit"
	}
}
