package domain

// BlockType tags a node in a rich-content tree.
type BlockType int

const (
	BlockSection BlockType = iota
	BlockText
	BlockUser
	BlockChannel
	BlockUserGroup
	BlockLink
	BlockEmoji
	BlockBreak
)

// Block is one node of a message's structured body. Interior nodes carry
// Children; leaves carry Text or a reference id depending on Type.
type Block struct {
	Type      BlockType
	Text      string
	UserID    string
	ChannelID string
	GroupID   string
	URL       string
	Name      string
	Children  []Block
}
