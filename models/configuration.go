package models

// ConfigurationSnapshot captures the user-facing settings pushed to the
// user's other devices by the configuration sync path. The snapshot always
// reflects the settings at the moment of the push; there is no fingerprint
// comparison on this path.
type ConfigurationSnapshot struct {
	// ReadReceipts enables sending read receipts to peers.
	ReadReceipts bool `json:"read_receipts"`

	// DeliveryIndicators enables showing delivery status in conversations.
	DeliveryIndicators bool `json:"delivery_indicators"`

	// TypingIndicators enables sending typing notifications.
	TypingIndicators bool `json:"typing_indicators"`

	// LinkPreviews enables generating previews for pasted links.
	LinkPreviews bool `json:"link_previews"`
}
