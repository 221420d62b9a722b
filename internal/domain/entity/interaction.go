package entity

// Action is a transport neutral button attached to an outgoing message
type Action struct {
	ActionID string
	Label    string
	Value    string
}

// Interaction identifies the in-flight user interaction a reply belongs to
type Interaction struct {
	UserID      string
	ChannelID   string
	ResponseURL string
}
