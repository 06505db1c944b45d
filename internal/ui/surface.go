package ui

// viewSurface is the Bubble Tea-backed implementation of pane.Surface: a
// scrollable column of text lines with a cursor and a highlight range. The
// model owns one per open pane and draws them side by side in View.
type viewSurface struct {
	name    string
	title   string
	lines   []string
	cursor  int
	offset  int
	hlStart int
	hlEnd   int
	hlTag   string
	closed  bool
}

func newViewSurface(name string) *viewSurface {
	return &viewSurface{name: name, hlStart: -1, hlEnd: -1}
}

func (s *viewSurface) SetContent(lines []string) {
	s.lines = lines
	if s.cursor >= len(lines) {
		s.cursor = len(lines) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *viewSurface) SetTitle(title string) {
	s.title = title
}

func (s *viewSurface) Highlight(start, end int, styleTag string) {
	s.hlStart, s.hlEnd, s.hlTag = start, end, styleTag
}

func (s *viewSurface) ClearHighlight() {
	s.hlStart, s.hlEnd, s.hlTag = -1, -1, ""
}

func (s *viewSurface) CursorLine() int {
	return s.cursor
}

func (s *viewSurface) Close() {
	s.closed = true
	s.lines = nil
	s.ClearHighlight()
}

// moveCursor shifts the cursor by delta, clamped to content, and reports
// whether it moved.
func (s *viewSurface) moveCursor(delta int) bool {
	if len(s.lines) == 0 {
		s.cursor = 0
		return false
	}
	old := s.cursor
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.lines) {
		s.cursor = len(s.lines) - 1
	}
	return s.cursor != old
}

// ensureVisible adjusts the viewport offset so the cursor stays on screen.
func (s *viewSurface) ensureVisible(maxVisible int) {
	if maxVisible <= 0 || len(s.lines) == 0 {
		s.offset = 0
		return
	}
	maxOffset := len(s.lines) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if upper := s.offset + maxVisible - 1; s.cursor > upper {
		s.offset = s.cursor - maxVisible + 1
		if s.offset > maxOffset {
			s.offset = maxOffset
		}
		if s.offset < 0 {
			s.offset = 0
		}
	}
}

// visibleWindow returns the slice bounds for the lines currently on screen.
func (s *viewSurface) visibleWindow(maxVisible int) (start, end int) {
	if maxVisible <= 0 || len(s.lines) <= maxVisible {
		return 0, len(s.lines)
	}
	start = s.offset
	end = start + maxVisible
	if end > len(s.lines) {
		end = len(s.lines)
	}
	return start, end
}
