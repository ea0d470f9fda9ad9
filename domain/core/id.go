package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	DatasetID ID
	FieldID   string
)

// String conversions for domain IDs
func (id DatasetID) String() string { return ID(id).String() }
func (id FieldID) String() string   { return string(id) }

// NewDatasetID mints a fresh dataset identifier
func NewDatasetID() DatasetID {
	return DatasetID(NewID())
}

// ParseDatasetID parses a string into DatasetID
func ParseDatasetID(s string) (DatasetID, error) {
	id := ID(strings.TrimSpace(s))
	if id.IsEmpty() {
		return "", fmt.Errorf("dataset ID cannot be empty")
	}
	return DatasetID(id), nil
}
