package shift

// Type identifies which of the two recognized work patterns an attendance
// interval belongs to. It is derived per interval, never stored.
type Type string

const (
	TypeDay   Type = "day_shift"
	TypeNight Type = "night_shift"
)

func (t Type) String() string {
	return string(t)
}
