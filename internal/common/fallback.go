package common

// Outcome is the tagged result of an operation that may substitute a
// fallback value. Callers branch on FellBack to decide what to log instead
// of re-deriving success or failure at every call site.
type Outcome[T any] struct {
	Value    T
	FellBack bool
	Reason   string
}

// Attempt runs produce and, on error, substitutes the fallback value,
// recording the failure reason on the outcome.
func Attempt[T any](produce func() (T, error), fallback func() T) Outcome[T] {
	value, err := produce()
	if err != nil {
		return Outcome[T]{
			Value:    fallback(),
			FellBack: true,
			Reason:   err.Error(),
		}
	}
	return Outcome[T]{Value: value}
}
