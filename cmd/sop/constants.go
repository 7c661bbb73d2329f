package main

// Default limits for CLI commands.
const (
	DefaultHistoryLimit = 50
)

// Valid export formats.
var validFormats = []string{"markdown", "json"}
