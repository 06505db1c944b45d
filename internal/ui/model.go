package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/slackdeck/internal/backend"
	"github.com/atomicstack/slackdeck/internal/data/dispatcher"
	"github.com/atomicstack/slackdeck/internal/domain"
	"github.com/atomicstack/slackdeck/internal/event"
	"github.com/atomicstack/slackdeck/internal/logging"
	"github.com/atomicstack/slackdeck/internal/pane"
	"github.com/atomicstack/slackdeck/internal/render"
	"github.com/atomicstack/slackdeck/internal/section"
	"github.com/atomicstack/slackdeck/internal/store"
	"github.com/atomicstack/slackdeck/internal/theme"
)

// Mode selects where key input goes.
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter
	ModeCompose
	ModeReply
	ModeReaction
)

type focusArea int

const (
	focusList focusArea = iota
	focusDetail
	focusThread
)

const infoDuration = 4 * time.Second

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model wires the panes, the store, and the fetch layer into one Bubble Tea
// program. All handlers run on the update goroutine; the only concurrency is
// fetch goroutines feeding the backend event channel.
type Model struct {
	width  int
	height int

	store      *store.Store
	bus        *event.Bus
	fetcher    *backend.Fetcher
	dispatcher *dispatcher.Dispatcher
	prefsPath  string
	groups     []string

	listSurface   *viewSurface
	detailSurface *viewSurface
	threadSurface *viewSurface
	list          *pane.Controller
	detail        *pane.Controller
	thread        *pane.Controller

	focus  focusArea
	mode   Mode
	input  textinput.Model
	filter string

	pendingReaction *domain.Message

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI over its collaborators. groups is the fixed list of
// custom section names channels can be cycled through.
func NewModel(s *store.Store, bus *event.Bus, fetcher *backend.Fetcher, prefsPath string, groups []string) *Model {
	m := &Model{
		store:      s,
		bus:        bus,
		fetcher:    fetcher,
		dispatcher: dispatcher.New(s),
		prefsPath:  prefsPath,
		groups:     groups,
	}
	m.listSurface = newViewSurface("list")
	m.detailSurface = newViewSurface("detail")
	m.list = pane.New("list", m.listSurface)
	m.detail = pane.New("detail", m.detailSurface)
	m.list.SetTitle("Channels")
	m.detail.SetTitle("Messages")

	input := textinput.New()
	input.CharLimit = 512
	if styles.Prompt != nil {
		input.PromptStyle = *styles.Prompt
	}
	if styles.Placeholder != nil {
		input.PlaceholderStyle = *styles.Placeholder
	}
	m.input = input

	bus.Subscribe(event.TopicChannelSelected, m.onChannelSelected)
	bus.Subscribe(event.TopicThreadSelected, m.onThreadSelected)
	bus.Subscribe(event.TopicUserCached, m.onUserCached)

	m.registerHandlers()
	m.renderList()
	m.renderDetail()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.fetcher.FetchChannels()
	return waitForBackendEvent(m.fetcher)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	return nil
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	evtMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(evtMsg.event)
	return waitForBackendEvent(m.fetcher)
}

// applyBackendEvent routes one fetch completion through the dispatcher and
// re-renders the panes whose subject it touched. Every render recomputes
// from the store, so late completions for superseded subjects are harmless.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		m.setError(fmt.Sprintf("%s fetch failed: %v", res.Kind, res.Err))
		return
	}
	switch {
	case res.ChannelsUpdated:
		m.renderList()
		m.requestMissingDMUsers()
	case res.MessagesChannel != "":
		if ref, ok := m.store.CurrentChannel(); ok && ref.ID == res.MessagesChannel {
			m.renderDetail()
		}
	case res.RepliesThread != "":
		if thread, ok := m.store.CurrentThread(); ok && thread.RootTS == res.RepliesThread {
			m.renderThread()
		}
	case res.UserID != "":
		// pane refreshes already ran via the cache event the store published
	case res.SentChannel != "":
		m.setInfo("message sent")
		m.fetcher.FetchMessages(res.SentChannel)
	case res.RepliedThread != "":
		m.setInfo("reply sent")
		if ref, ok := m.store.CurrentChannel(); ok {
			m.fetcher.FetchReplies(ref.ID, res.RepliedThread)
		}
	}
}

// onChannelSelected reacts to a list-pane selection: retitle the detail
// pane, show it in its loading state, and fetch the channel history.
func (m *Model) onChannelSelected(payload interface{}) {
	ref, ok := payload.(domain.ChannelRef)
	if !ok {
		return
	}
	m.detail.SetTitle(ref.Name)
	m.closeThread()
	m.renderDetail()
	m.fetcher.FetchMessages(ref.ID)
}

// onThreadSelected opens the thread pane for a newly selected root and
// fetches its replies.
func (m *Model) onThreadSelected(payload interface{}) {
	rootTS, ok := payload.(string)
	if !ok {
		return
	}
	m.openThread()
	m.renderThread()
	ref, ok := m.store.CurrentChannel()
	if !ok {
		return
	}
	m.fetcher.FetchReplies(ref.ID, rootTS)
}

// onUserCached re-renders every open pane whose content may hold a
// placeholder for the freshly cached user. Renders are full re-derivations,
// so no targeting is needed beyond "is the pane open".
func (m *Model) onUserCached(interface{}) {
	m.renderList()
	m.renderDetail()
	if m.threadOpen() {
		m.renderThread()
	}
}

func (m *Model) renderList() {
	sections := section.Classify(m.filteredChannels(), m.store.Prefs(), m.store)
	m.list.Render(func() ([]string, *render.Index) {
		return render.ChannelLines(sections)
	})
}

func (m *Model) renderDetail() {
	ref, ok := m.store.CurrentChannel()
	if !ok {
		m.detail.Render(func() ([]string, *render.Index) {
			return render.PlaceholderLines("(no channel selected)")
		})
		return
	}
	msgs, fetched := m.store.Messages(ref.ID)
	m.detail.Render(func() ([]string, *render.Index) {
		return render.MessageLines(msgs, fetched, m.store)
	})
	m.requestMissingAuthors(msgs)
}

func (m *Model) renderThread() {
	if !m.threadOpen() {
		return
	}
	thread, ok := m.store.CurrentThread()
	if !ok {
		m.thread.Render(func() ([]string, *render.Index) {
			return render.ThreadLines(domain.Thread{}, nil, false, m.store)
		})
		return
	}
	replies, fetched := m.store.ThreadReplies(thread.RootTS)
	m.thread.Render(func() ([]string, *render.Index) {
		return render.ThreadLines(thread, replies, fetched, m.store)
	})
	m.requestMissingAuthors(replies)
}

func (m *Model) threadOpen() bool {
	return m.thread != nil && m.thread.State() != pane.StateClosed
}

func (m *Model) openThread() {
	if m.threadOpen() {
		return
	}
	m.threadSurface = newViewSurface("thread")
	m.thread = pane.New("thread", m.threadSurface)
	m.thread.SetTitle("Thread")
	m.focus = focusThread
}

// closeThread tears the thread pane down. The controller instance is
// terminal once closed; a later selection opens a fresh one.
func (m *Model) closeThread() {
	if !m.threadOpen() {
		return
	}
	m.thread.Close()
	if m.focus == focusThread {
		m.focus = focusDetail
	}
}

// filteredChannels narrows the channel list by the active fuzzy filter.
func (m *Model) filteredChannels() []domain.Channel {
	channels := m.store.Channels()
	if m.filter == "" {
		return channels
	}
	out := channels[:0]
	for _, ch := range channels {
		name := ch.Name
		if name == "" && ch.UserID != "" {
			if label, ok := m.store.UserLabel(ch.UserID); ok {
				name = label
			}
		}
		if fuzzy.MatchFold(m.filter, name) {
			out = append(out, ch)
		}
	}
	return out
}

// requestMissingDMUsers issues background lookups for direct-message
// counterparts that rendered as placeholders. Duplicate requests are
// coalesced inside the fetcher.
func (m *Model) requestMissingDMUsers() {
	for _, ch := range m.store.Channels() {
		if ch.Kind != domain.KindDirect || ch.Name != "" || ch.UserID == "" {
			continue
		}
		if _, ok := m.store.User(ch.UserID); !ok {
			m.fetcher.FetchUser(ch.UserID)
		}
	}
}

// requestMissingAuthors issues background lookups for message authors and
// mentioned users that are not yet cached.
func (m *Model) requestMissingAuthors(msgs []domain.Message) {
	for _, msg := range msgs {
		if msg.UserID != "" {
			if _, ok := m.store.User(msg.UserID); !ok {
				m.fetcher.FetchUser(msg.UserID)
			}
		}
		m.requestMentionedUsers(msg.Blocks)
	}
}

func (m *Model) requestMentionedUsers(blocks []domain.Block) {
	for _, b := range blocks {
		if b.Type == domain.BlockUser && b.UserID != "" {
			if _, ok := m.store.User(b.UserID); !ok {
				m.fetcher.FetchUser(b.UserID)
			}
		}
		m.requestMentionedUsers(b.Children)
	}
}

func (m *Model) persistPrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := m.store.Prefs().Save(m.prefsPath); err != nil {
		logging.Error(err)
		m.setError("could not save preferences")
	}
}

func (m *Model) setInfo(text string) {
	m.infoMsg = text
	m.infoExpire = time.Now().Add(infoDuration)
	m.errMsg = ""
}

func (m *Model) setError(text string) {
	m.errMsg = text
	m.infoMsg = ""
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" || time.Now().After(m.infoExpire) {
		return ""
	}
	return m.infoMsg
}
