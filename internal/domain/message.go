package domain

import (
	"sort"
	"strconv"
	"strings"
)

// Message is one message within a channel. Identity is (ChannelID, TS); the
// timestamp string is assigned by the remote service and doubles as the sort
// key, so ties within a channel cannot occur.
type Message struct {
	ChannelID  string
	TS         string
	UserID     string
	Username   string
	Subtype    string
	Text       string
	Blocks     []Block
	Reactions  []Reaction
	ThreadTS   string
	ReplyCount int
}

// Reaction is an emoji reaction tally on a message.
type Reaction struct {
	Name  string
	Count int
}

// IsThreadRoot reports whether the message anchors a thread with replies.
func (m Message) IsThreadRoot() bool {
	return m.ReplyCount > 0 && (m.ThreadTS == "" || m.ThreadTS == m.TS)
}

// Thread is a root timestamp plus its ordered replies. Parent may be nil
// right after selection when the root message has not been fetched yet.
type Thread struct {
	RootTS  string
	Parent  *Message
	Replies []Message
}

// CompareTS orders two service timestamps numerically. Timestamps are decimal
// strings of the form "seconds.fraction"; lexical comparison would put
// "100.000" before "99.002", so the integer part is compared by numeric value
// and the fraction by its digit string.
func CompareTS(a, b string) int {
	asec, afrac := splitTS(a)
	bsec, bfrac := splitTS(b)
	if asec != bsec {
		if asec < bsec {
			return -1
		}
		return 1
	}
	return strings.Compare(afrac, bfrac)
}

// TSSeconds returns the whole-second component of a service timestamp.
func TSSeconds(ts string) int64 {
	sec, _ := splitTS(ts)
	return sec
}

func splitTS(ts string) (int64, string) {
	sec := ts
	frac := ""
	if i := strings.IndexByte(ts, '.'); i >= 0 {
		sec = ts[:i]
		frac = ts[i+1:]
	}
	n, err := strconv.ParseInt(sec, 10, 64)
	if err != nil {
		return 0, frac
	}
	return n, frac
}

// SortMessages orders messages ascending by timestamp in place.
func SortMessages(msgs []Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return CompareTS(msgs[i].TS, msgs[j].TS) < 0
	})
}
