package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors, in the order the preconditions are evaluated
	ErrMissingPhoto     = errors.New("a photo is required as proof of presence")
	ErrCutoffPassed     = errors.New("check-in is closed for today; you are recorded absent")
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")

	// Resolver errors
	ErrFutureDate = errors.New("cannot resolve attendance status for a future date")

	// Sweeper errors
	ErrSweepInProgress = errors.New("an absence sweep is already running")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
