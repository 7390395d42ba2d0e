package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrMissingPrerequisite is returned when a seeding stage needs data an
	// earlier stage should have committed.
	ErrMissingPrerequisite = errors.New("missing prerequisite data")
)
