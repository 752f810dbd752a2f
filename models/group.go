// SPDX-License-Identifier: Apache-2.0

package models

// GroupKind distinguishes the two group families the client tracks.
type GroupKind string

const (
	// GroupKindClosed is a small member-managed group synchronized entity by
	// entity.
	GroupKindClosed GroupKind = "closed"

	// GroupKindCommunity is an externally hosted group pushed as a single
	// aggregate message.
	GroupKindCommunity GroupKind = "community"
)

// Group represents one group conversation known to the local device.
type Group struct {
	// ID is the stable UUID of the group.
	ID string `json:"id"`

	// Name is the display name of the group.
	Name string `json:"name"`

	// Kind reports which group family this record belongs to.
	Kind GroupKind `json:"kind"`

	// Member reports whether the local user currently belongs to the group.
	Member bool `json:"member"`

	// Visible reports whether the group appears in the local conversation
	// list.
	Visible bool `json:"visible"`

	// ForceHidden marks groups excluded from synchronization regardless of
	// visibility.
	ForceHidden bool `json:"force_hidden"`
}
