package models

// SyncType names a category of synchronized state. Each sync type owns one
// durable fingerprint slot and one in-flight flag.
type SyncType string

const (
	// SyncTypeContacts covers the local contact record and the contact roster.
	SyncTypeContacts SyncType = "contacts"

	// SyncTypeConfiguration covers the user settings snapshot.
	SyncTypeConfiguration SyncType = "configuration"
)

// SyncMessage is a single outbound unit handed to the transport layer.
// The payload is an opaque serialized roster or configuration snapshot;
// the transport never inspects it.
type SyncMessage struct {
	// ID is the client-generated UUID of this message.
	ID string `json:"id"`

	// Type tags the sync category the message belongs to.
	Type SyncType `json:"type"`

	// Payload holds the serialized sync content.
	Payload []byte `json:"payload"`

	// Attachment holds an optional binary payload delivered alongside the
	// message (for example an avatar blob). Nil when absent.
	Attachment []byte `json:"attachment,omitempty"`
}
