package store

import (
	"testing"

	"github.com/atomicstack/slackdeck/internal/domain"
	"github.com/atomicstack/slackdeck/internal/event"
	"github.com/atomicstack/slackdeck/internal/prefs"
)

func newTestStore() (*Store, *event.Bus) {
	bus := event.New()
	return New(bus, prefs.New()), bus
}

func TestSetMessagesSortsByTimestamp(t *testing.T) {
	s, _ := newTestStore()
	s.SetMessages("C1", []domain.Message{
		{ChannelID: "C1", TS: "100.001"},
		{ChannelID: "C1", TS: "99.002"},
		{ChannelID: "C1", TS: "100.000"},
	})
	msgs, ok := s.Messages("C1")
	if !ok {
		t.Fatalf("messages should be present after set")
	}
	want := []string{"99.002", "100.000", "100.001"}
	for i, ts := range want {
		if msgs[i].TS != ts {
			t.Fatalf("position %d: got %s want %s", i, msgs[i].TS, ts)
		}
	}
}

func TestMessagesDistinguishesUnfetchedFromEmpty(t *testing.T) {
	s, _ := newTestStore()
	if _, ok := s.Messages("C1"); ok {
		t.Fatalf("unfetched channel should report absent")
	}
	s.SetMessages("C1", nil)
	if msgs, ok := s.Messages("C1"); !ok || len(msgs) != 0 {
		t.Fatalf("fetched-empty channel should report present and empty")
	}
}

func TestSetUserPublishesCacheEvent(t *testing.T) {
	s, bus := newTestStore()
	var got interface{}
	bus.Subscribe(event.TopicUserCached, func(payload interface{}) {
		got = payload
	})
	s.SetUser(domain.User{ID: "U1", DisplayName: "alice"})
	if got != "U1" {
		t.Fatalf("expected cache event for U1, got %v", got)
	}
	if label, ok := s.UserLabel("U1"); !ok || label != "alice" {
		t.Fatalf("UserLabel = %q, %v", label, ok)
	}
}

func TestSelectingChannelClearsThread(t *testing.T) {
	s, _ := newTestStore()
	s.SetCurrentChannel("C1", "general")
	s.SetCurrentThread("10.000", &domain.Message{ChannelID: "C1", TS: "10.000"})
	if _, ok := s.CurrentThread(); !ok {
		t.Fatalf("thread should be selected")
	}
	s.SetCurrentChannel("C2", "random")
	if _, ok := s.CurrentThread(); ok {
		t.Fatalf("thread selection should be cleared on channel change")
	}
	ref, ok := s.CurrentChannel()
	if !ok || ref.ID != "C2" || ref.Name != "random" {
		t.Fatalf("current channel = %+v, %v", ref, ok)
	}
}

func TestResetKeepsPreferences(t *testing.T) {
	s, _ := newTestStore()
	s.Prefs().ToggleStar("C1")
	s.SetChannels([]domain.Channel{{ID: "C1", Name: "general"}})
	s.SetUser(domain.User{ID: "U1"})
	s.Reset()
	if len(s.Channels()) != 0 {
		t.Fatalf("channels should be dropped on reset")
	}
	if _, ok := s.User("U1"); ok {
		t.Fatalf("users should be dropped on reset")
	}
	if !s.Prefs().IsStarred("C1") {
		t.Fatalf("preferences must survive reset")
	}
}

func TestChannelNameResolution(t *testing.T) {
	s, _ := newTestStore()
	s.SetChannels([]domain.Channel{
		{ID: "C1", Name: "general", Kind: domain.KindPublic},
		{ID: "D1", Kind: domain.KindDirect, UserID: "U2"},
	})
	if name, ok := s.ChannelName("C1"); !ok || name != "general" {
		t.Fatalf("ChannelName(C1) = %q, %v", name, ok)
	}
	if _, ok := s.ChannelName("D1"); ok {
		t.Fatalf("unnamed channel should be unresolved")
	}
}
