// SPDX-License-Identifier: Apache-2.0

package models

// Contact represents a single peer entity known to the local device.
// The same type describes the local identity record returned by the
// roster provider's LocalContact.
type Contact struct {
	// ID is the stable UUID of the contact.
	ID string `json:"id"`

	// Name is the display name shown for this contact.
	Name string `json:"name"`

	// ProfileKey is the contact's current profile encryption key, opaque to
	// this package.
	ProfileKey []byte `json:"profile_key,omitempty"`

	// IsFriend reports whether an established peer relationship exists.
	// Only friends are eligible for roster synchronization.
	IsFriend bool `json:"is_friend"`

	// Visible reports whether the contact appears in the local conversation
	// list.
	Visible bool `json:"visible"`

	// ForceHidden marks contacts excluded from synchronization regardless of
	// visibility.
	ForceHidden bool `json:"force_hidden"`
}
