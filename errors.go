package allen

// ErrEmptyInterval is returned when an interval with no width (or with
// inverted endpoints) is used where the algebra requires a non-empty
// interval. The thirteen relations are undefined for empty intervals.
var ErrEmptyInterval = &IntervalError{"interval is empty"}

type IntervalError struct {
	Msg string
}

func (e *IntervalError) Error() string {
	return e.Msg
}

func (e *IntervalError) Is(target error) bool {
	if targetErr, ok := target.(*IntervalError); ok {
		return e.Msg == targetErr.Msg
	}
	return false
}
