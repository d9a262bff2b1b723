package biz

import "errors"

var (
	// ErrNameRequired name missing or empty on create
	ErrNameRequired = errors.New("name is required")

	// ErrCreationFailed the insert ran but handed back no row
	ErrCreationFailed = errors.New("failed to create assistant")
)
