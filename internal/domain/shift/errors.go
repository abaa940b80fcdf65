package shift

import "errors"

var (
	// ErrMalformedInterval marks an attendance interval whose check-out does
	// not come after its check-in. Such intervals are skipped before
	// classification.
	ErrMalformedInterval = errors.New("attendance interval is malformed: check-out must be after check-in")

	// ErrInconsistentShiftDay marks a night-classified interval starting on a
	// Sunday or a holiday. Night shifts must not occur on those days.
	ErrInconsistentShiftDay = errors.New("night shift must not occur on a holiday or Sunday")

	// ErrBoundsViolation marks a clock event outside the one-hour tolerance
	// around the shift window. Reported for manual review, does not block
	// aggregation.
	ErrBoundsViolation = errors.New("clock time outside allowed shift bounds")

	// ErrUnknownShiftType indicates a programming defect, not a data issue.
	ErrUnknownShiftType = errors.New("unknown shift type")
)
