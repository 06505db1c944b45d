package domain

// ChannelKind distinguishes the conversation flavours the service exposes.
type ChannelKind int

const (
	KindPublic ChannelKind = iota
	KindPrivate
	KindDirect
	KindGroup
)

// String returns the lowercase kind name used in traces and prefs files.
func (k ChannelKind) String() string {
	switch k {
	case KindPublic:
		return "public"
	case KindPrivate:
		return "private"
	case KindDirect:
		return "direct"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Channel is a conversation reference. Direct-message channels carry the
// remote user's id in UserID and may have an empty Name until that user is
// resolved.
type Channel struct {
	ID     string
	Name   string
	Kind   ChannelKind
	UserID string
	Member bool
}

// ChannelRef is a lightweight selection handle for the current channel.
type ChannelRef struct {
	ID   string
	Name string
}
