package main

// Exit codes shared by all commands
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing config, no CSV path)
	ExitDataError   = 3 // Data error (schema mismatch, malformed input)
	ExitNotFound    = 4 // Required source file not found
)
