package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/slackdeck/internal/event"
	"github.com/atomicstack/slackdeck/internal/logging/events"
	"github.com/atomicstack/slackdeck/internal/render"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeNormal {
		return m.handleInputModeKey(key)
	}
	switch key.String() {
	case "ctrl+c", "q":
		m.persistPrefs()
		return tea.Quit
	case "tab":
		m.cycleFocus()
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "enter":
		m.activate()
	case "r":
		m.refreshFocused()
	case "s":
		m.toggleStar()
	case "c":
		m.toggleCollapse()
	case "g":
		m.cycleGroup()
	case "/":
		m.enterFilterMode()
	case "i":
		m.enterComposeMode()
	case "+":
		m.enterReactionMode()
	case "esc":
		m.handleEscape()
	}
	return nil
}

// handleInputModeKey feeds keys to the text input until submit or cancel.
func (m *Model) handleInputModeKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		return m.submitInput()
	case "esc":
		m.cancelInput()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	if m.mode == ModeFilter {
		m.filter = m.input.Value()
		m.renderList()
	}
	return cmd
}

func (m *Model) focusedSurface() *viewSurface {
	switch m.focus {
	case focusList:
		return m.listSurface
	case focusDetail:
		return m.detailSurface
	case focusThread:
		if m.threadOpen() {
			return m.threadSurface
		}
	}
	return nil
}

func (m *Model) focusedController() interface {
	EntityAtCursor() (render.Entity, bool)
	HeaderAtCursor() (render.Header, bool)
	RefreshHighlight()
} {
	switch m.focus {
	case focusList:
		return m.list
	case focusDetail:
		return m.detail
	case focusThread:
		if m.threadOpen() {
			return m.thread
		}
	}
	return nil
}

func (m *Model) cycleFocus() {
	switch m.focus {
	case focusList:
		m.focus = focusDetail
	case focusDetail:
		if m.threadOpen() {
			m.focus = focusThread
		} else {
			m.focus = focusList
		}
	case focusThread:
		m.focus = focusList
	}
}

func (m *Model) moveCursor(delta int) {
	surface := m.focusedSurface()
	if surface == nil {
		return
	}
	if surface.moveCursor(delta) {
		surface.ensureVisible(m.paneContentHeight())
		if ctrl := m.focusedController(); ctrl != nil {
			ctrl.RefreshHighlight()
		}
	}
}

// activate resolves the focused pane's cursor line through its line index.
// Unresolvable positions are a no-op, not an error.
func (m *Model) activate() {
	switch m.focus {
	case focusList:
		if header, ok := m.list.HeaderAtCursor(); ok {
			m.toggleCollapseSection(header.ID)
			return
		}
		if e, ok := m.list.EntityAtCursor(); ok && e.Kind == render.KindChannel {
			m.selectChannel(e)
		}
	case focusDetail:
		if e, ok := m.detail.EntityAtCursor(); ok && e.Kind == render.KindMessage {
			m.selectThread(e)
		}
	}
}

func (m *Model) selectChannel(e render.Entity) {
	events.Pane.Select("list", e.Channel.ID)
	m.store.SetCurrentChannel(e.Channel.ID, e.Label)
	ref, _ := m.store.CurrentChannel()
	m.bus.Publish(event.TopicChannelSelected, ref)
	m.focus = focusDetail
}

func (m *Model) selectThread(e render.Entity) {
	msg := e.Message
	if !msg.IsThreadRoot() {
		return
	}
	events.Pane.Select("detail", msg.ChannelID+":"+msg.TS)
	parent := msg
	m.store.SetCurrentThread(msg.TS, &parent)
	m.bus.Publish(event.TopicThreadSelected, msg.TS)
}

func (m *Model) refreshFocused() {
	switch m.focus {
	case focusList:
		m.fetcher.FetchChannels()
	case focusDetail:
		ref, ok := m.store.CurrentChannel()
		if !ok {
			m.setError("no channel selected")
			return
		}
		m.fetcher.FetchMessages(ref.ID)
	case focusThread:
		thread, ok := m.store.CurrentThread()
		if !ok {
			m.setError("no thread selected")
			return
		}
		if ref, ok := m.store.CurrentChannel(); ok {
			m.fetcher.FetchReplies(ref.ID, thread.RootTS)
		}
	}
}

func (m *Model) toggleStar() {
	if m.focus != focusList {
		return
	}
	e, ok := m.list.EntityAtCursor()
	if !ok || e.Kind != render.KindChannel {
		return
	}
	starred := m.store.Prefs().ToggleStar(e.Channel.ID)
	m.persistPrefs()
	m.renderList()
	if starred {
		m.setInfo("starred " + e.Label)
	} else {
		m.setInfo("unstarred " + e.Label)
	}
}

func (m *Model) toggleCollapse() {
	if m.focus != focusList {
		return
	}
	header, ok := m.list.HeaderAtCursor()
	if !ok {
		return
	}
	m.toggleCollapseSection(header.ID)
}

func (m *Model) toggleCollapseSection(id string) {
	m.store.Prefs().ToggleCollapsed(id)
	m.persistPrefs()
	m.renderList()
}

// cycleGroup moves the channel under the cursor through the configured
// custom sections and back to none.
func (m *Model) cycleGroup() {
	if m.focus != focusList || len(m.groups) == 0 {
		return
	}
	e, ok := m.list.EntityAtCursor()
	if !ok || e.Kind != render.KindChannel {
		return
	}
	prefs := m.store.Prefs()
	next := m.groups[0]
	if current, ok := prefs.Group(e.Channel.ID); ok {
		next = ""
		for i, g := range m.groups {
			if g == current && i+1 < len(m.groups) {
				next = m.groups[i+1]
				break
			}
		}
	}
	prefs.AssignGroup(e.Channel.ID, next)
	m.persistPrefs()
	m.renderList()
	if next == "" {
		m.setInfo("removed " + e.Label + " from custom sections")
	} else {
		m.setInfo("moved " + e.Label + " to " + next)
	}
}

func (m *Model) enterFilterMode() {
	if m.focus != focusList {
		return
	}
	m.mode = ModeFilter
	m.input.Reset()
	m.input.Prompt = "/"
	m.input.Placeholder = "filter channels"
	m.input.SetValue(m.filter)
	m.input.Focus()
}

func (m *Model) enterComposeMode() {
	switch m.focus {
	case focusThread:
		if _, ok := m.store.CurrentThread(); !ok {
			m.setError("no thread selected")
			return
		}
		m.mode = ModeReply
		m.input.Prompt = "reply> "
	default:
		if _, ok := m.store.CurrentChannel(); !ok {
			m.setError("no channel selected")
			return
		}
		m.mode = ModeCompose
		m.input.Prompt = "> "
	}
	m.input.Reset()
	m.input.Placeholder = ""
	m.input.Focus()
}

func (m *Model) enterReactionMode() {
	ctrl := m.focusedController()
	if ctrl == nil || m.focus == focusList {
		return
	}
	e, ok := ctrl.EntityAtCursor()
	if !ok || e.Kind != render.KindMessage {
		return
	}
	msg := e.Message
	m.pendingReaction = &msg
	m.mode = ModeReaction
	m.input.Reset()
	m.input.Prompt = "emoji> "
	m.input.Placeholder = "thumbsup"
	m.input.Focus()
}

func (m *Model) submitInput() tea.Cmd {
	text := m.input.Value()
	mode := m.mode
	m.cancelInput()
	if text == "" {
		return nil
	}
	switch mode {
	case ModeFilter:
		m.filter = text
		m.renderList()
		return nil
	case ModeCompose:
		ref, ok := m.store.CurrentChannel()
		if !ok {
			m.setError("no channel selected")
			return nil
		}
		m.fetcher.Send(ref.ID, text)
	case ModeReply:
		thread, ok := m.store.CurrentThread()
		if !ok {
			m.setError("no thread selected")
			return nil
		}
		ref, ok := m.store.CurrentChannel()
		if !ok {
			m.setError("no channel selected")
			return nil
		}
		m.fetcher.Reply(ref.ID, thread.RootTS, text)
	case ModeReaction:
		if m.pendingReaction != nil {
			m.fetcher.React(m.pendingReaction.ChannelID, m.pendingReaction.TS, text)
			m.pendingReaction = nil
		}
	}
	return nil
}

func (m *Model) cancelInput() {
	m.mode = ModeNormal
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) handleEscape() {
	switch {
	case m.focus == focusThread && m.threadOpen():
		m.closeThread()
	case m.filter != "":
		m.filter = ""
		m.renderList()
	}
}
