package ui

import "github.com/google/uuid"

// ID identifies a widget, window or panel across frames. IDs are derived
// from strings so the same source always yields the same ID.
type ID uuid.UUID

var rootNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("demohost.ui"))

// IDFrom derives a top-level ID from source.
func IDFrom(source string) ID {
	return ID(uuid.NewSHA1(rootNamespace, []byte(source)))
}

// Child derives an ID scoped under id.
func (id ID) Child(source string) ID {
	return ID(uuid.NewSHA1(uuid.UUID(id), []byte(source)))
}

func (id ID) IsZero() bool { return id == ID(uuid.Nil) }

func (id ID) String() string { return uuid.UUID(id).String() }

// Short is the first uuid group, enough to tell ids apart on screen.
func (id ID) Short() string {
	if id.IsZero() {
		return "-"
	}
	return id.String()[:8]
}
