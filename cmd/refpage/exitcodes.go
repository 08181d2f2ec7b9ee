package main

// Exit codes.
const (
	ExitSuccess     = 0 // Success, including batches with skipped entries
	ExitError       = 1 // General error (unwritable output, no inputs, runtime failure)
	ExitConfigError = 2 // Configuration error (bad config file, missing template)
)
