package service

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/rostersync/go-roster-sync/models"
)

// Payload encoders sort by ID before marshaling so that the same roster
// state always serializes to the same bytes, regardless of provider
// enumeration order. Fingerprint comparison depends on this.

func encodeContacts(contacts []models.Contact) ([]byte, error) {
	sorted := slices.Clone(contacts)
	slices.SortFunc(sorted, func(a, b models.Contact) int {
		return strings.Compare(a.ID, b.ID)
	})
	return json.Marshal(sorted)
}

func encodeGroups(groups []models.Group) ([]byte, error) {
	sorted := slices.Clone(groups)
	slices.SortFunc(sorted, func(a, b models.Group) int {
		return strings.Compare(a.ID, b.ID)
	})
	return json.Marshal(sorted)
}

func encodeConfiguration(snapshot models.ConfigurationSnapshot) ([]byte, error) {
	return json.Marshal(snapshot)
}
