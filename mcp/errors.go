package mcp

import "errors"

// ErrMissingRegistry is returned when the source registry is not provided.
var ErrMissingRegistry = errors.New("mcp: source registry is required")

// ErrMissingDocService is returned when the document service is not provided.
var ErrMissingDocService = errors.New("mcp: document service is required")
