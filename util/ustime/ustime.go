// Package ustime provides microsecond-precision time utilities. Block
// timestamps and the elapsed-time statistics fed into difficulty
// retargeting are measured in whole microseconds, so everything that
// touches consensus goes through this package rather than raw time.Time.
package ustime

import "time"

const (
	nanosecondsInMicrosecond = int64(time.Microsecond / time.Nanosecond)
	microsecondsInSecond     = int64(time.Second / time.Microsecond)
)

// Span is a length of time in whole microseconds. Unlike time.Duration it
// carries no sub-microsecond component, so two nodes computing the same
// span from the same timestamps agree bit for bit.
type Span int64

// SpanFromDuration truncates d to microsecond precision.
func SpanFromDuration(d time.Duration) Span {
	return Span(d.Nanoseconds() / nanosecondsInMicrosecond)
}

// SpanFromSeconds returns a span of the given number of whole seconds.
func SpanFromSeconds(seconds int64) Span {
	return Span(seconds * microsecondsInSecond)
}

// Duration converts s to a time.Duration.
func (s Span) Duration() time.Duration {
	return time.Duration(int64(s) * nanosecondsInMicrosecond)
}

// Microseconds returns s as a count of microseconds.
func (s Span) Microseconds() int64 {
	return int64(s)
}

func (s Span) String() string {
	return s.Duration().String()
}

// Now returns the current time with any sub-microsecond component dropped.
func Now() time.Time {
	return ReduceToMicrosecondPrecision(time.Now())
}

// UnixMicroToTime converts a microsecond unix timestamp to a time.Time.
func UnixMicroToTime(us int64) time.Time {
	seconds := us / microsecondsInSecond
	nanoseconds := (us - seconds*microsecondsInSecond) * nanosecondsInMicrosecond
	return time.Unix(seconds, nanoseconds)
}

// TimeToUnixMicro converts t to a microsecond unix timestamp.
func TimeToUnixMicro(t time.Time) int64 {
	return t.UnixNano() / nanosecondsInMicrosecond
}

// ReduceToMicrosecondPrecision drops the sub-microsecond component of t.
func ReduceToMicrosecondPrecision(t time.Time) time.Time {
	nanoseconds := int64(t.Nanosecond())
	microsecondPrecisionNanoseconds := (nanoseconds / nanosecondsInMicrosecond) * nanosecondsInMicrosecond
	return time.Unix(t.Unix(), microsecondPrecisionNanoseconds)
}
