// Package project implements the core domain logic for the "pyinit init"
// command: initialization state detection, pyproject.toml bootstrap and
// patching, starter-file deployment, and changelog scaffolding.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrAlreadyInitialized indicates the project root carries the sentinel
	// marker or a renamed pyproject.toml.
	ErrAlreadyInitialized = errors.New("project already initialized")

	// ErrBootstrapFailed indicates pyproject.toml was absent and the
	// bootstrap command could not create one.
	ErrBootstrapFailed = errors.New("bootstrap command failed")

	// ErrInvalidStructure indicates an unrecognized structure value.
	ErrInvalidStructure = errors.New("invalid structure: must be default, package, or library")

	// ErrProjectNameRequired indicates no project name was supplied.
	ErrProjectNameRequired = errors.New("project name is required")
)
