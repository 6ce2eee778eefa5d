package check

import "fmt"

// CorruptionError describes a fatal inconsistency found in the catalog.
// Context names the structure under examination ("Inode record", "Inode
// xfield", ...), Message the violated rule.
type CorruptionError struct {
	Context string
	Message string
}

func (e *CorruptionError) Error() string {
	return e.Context + ": " + e.Message
}

// reportf builds the CorruptionError for a violation.
func reportf(ctx, msg string, args ...any) error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &CorruptionError{Context: ctx, Message: msg}
}
