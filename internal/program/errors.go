package program

import "errors"

// SafetyError reports travel heights that could drive the tool into
// the workpiece.
type SafetyError struct {
	Message string
}

func (e *SafetyError) Error() string {
	return e.Message
}

// IsSafetyError reports whether err is a SafetyError.
func IsSafetyError(err error) bool {
	var safetyErr *SafetyError
	return errors.As(err, &safetyErr)
}

// MergeError reports programs or contexts that cannot be combined.
type MergeError struct {
	Message string
}

func (e *MergeError) Error() string {
	return e.Message
}

// IsMergeError reports whether err is a MergeError.
func IsMergeError(err error) bool {
	var mergeErr *MergeError
	return errors.As(err, &mergeErr)
}
