package contract

// ChannelSender defines the outbound delivery capability: send text to a
// chat channel addressed by numeric id.
// This allows mocking in tests while keeping the real implementation simple.
type ChannelSender interface {
	// ResolveChannel reports whether the channel id maps to a reachable channel.
	ResolveChannel(channelID int64) (bool, error)

	// SendMessage posts text to the channel.
	SendMessage(channelID int64, text string) error
}
