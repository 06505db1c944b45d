package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/slackdeck/internal/pane"
)

const (
	listPaneWidth = 28
	minPaneWidth  = 20
	chromeHeight  = 3 // pane title, status line, footer
	defaultWidth  = 100
	defaultHeight = 30
)

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}

	columns := make([]string, 0, 3)
	listWidth := listPaneWidth
	if listWidth > width/3 {
		listWidth = width / 3
	}
	remaining := width - listWidth
	detailWidth := remaining
	threadWidth := 0
	if m.threadOpen() {
		threadWidth = remaining / 2
		if threadWidth < minPaneWidth {
			threadWidth = 0
		}
		detailWidth = remaining - threadWidth
	}

	columns = append(columns, m.paneColumn(m.list, m.listSurface, listWidth, m.focus == focusList))
	columns = append(columns, m.paneColumn(m.detail, m.detailSurface, detailWidth, m.focus == focusDetail))
	if threadWidth > 0 {
		columns = append(columns, m.paneColumn(m.thread, m.threadSurface, threadWidth, m.focus == focusThread))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	status := m.statusLine(width)
	footer := m.footerLine(width)
	return body + "\n" + status + "\n" + footer
}

func (m *Model) paneContentHeight() int {
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}
	h := height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) paneColumn(ctrl *pane.Controller, surface *viewSurface, width int, focused bool) string {
	maxVisible := m.paneContentHeight() - 1 // minus the title line
	if maxVisible < 1 {
		maxVisible = 1
	}

	titleStyle := styles.Title
	if focused {
		titleStyle = styles.FocusedTitle
	}
	rows := make([]string, 0, maxVisible+1)
	rows = append(rows, titleStyle.Render(clip(surface.title, width)))

	surface.ensureVisible(maxVisible)
	start, end := surface.visibleWindow(maxVisible)
	for i := start; i < end; i++ {
		rows = append(rows, m.styleLine(ctrl, surface, i, clip(surface.lines[i], width)))
	}
	for len(rows) < maxVisible+1 {
		rows = append(rows, "")
	}

	column := strings.Join(rows, "\n")
	return lipgloss.NewStyle().Width(width).Render(column)
}

func (m *Model) styleLine(ctrl *pane.Controller, surface *viewSurface, line int, text string) string {
	if surface.hlStart >= 0 && line >= surface.hlStart && line <= surface.hlEnd {
		return styles.SelectedItem.Render(text)
	}
	if ctrl != nil {
		if _, ok := ctrl.HeaderAt(line); ok {
			return styles.SectionHeader.Render(text)
		}
	}
	return styles.Item.Render(text)
}

func (m *Model) statusLine(width int) string {
	if m.mode != ModeNormal {
		return clip(m.input.View(), width)
	}
	if m.errMsg != "" {
		return styles.Error.Render(clip(m.errMsg, width))
	}
	if info := m.currentInfo(); info != "" {
		return styles.Info.Render(clip(info, width))
	}
	return ""
}

func (m *Model) footerLine(width int) string {
	hints := "↑/↓ move  enter select  tab pane  s star  c fold  g group  / filter  i write  + react  r refresh  q quit"
	return styles.Footer.Render(clip(hints, width))
}

func clip(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.String(text, uint(width))
}
