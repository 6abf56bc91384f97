package mcqgen

import "log"

// Global verbose flag for stage progress output.
var verboseMode bool

// SetVerbose enables or disables stage progress logging.
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// verbosef logs only when verbose mode is enabled.
func verbosef(format string, v ...any) {
	if verboseMode {
		log.Printf(format, v...)
	}
}
