package core

import "github.com/google/uuid"

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Falls back to v4 if v7 generation fails
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// RenderID identifies one dashboard render in logs and response headers.
type RenderID ID

// NewRenderID creates a fresh render identifier
func NewRenderID() RenderID {
	return RenderID(NewID())
}

func (id RenderID) String() string { return ID(id).String() }
