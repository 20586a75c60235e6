package telemetry

import "github.com/google/uuid"

// newRunID mints a correlation identifier for one CLI invocation,
// grounded on the UUID-tagged request/session idiom used throughout
// the go-coffee codebase (e.g. its order and session identifiers).
func newRunID() string {
	return uuid.New().String()
}
