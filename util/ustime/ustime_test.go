package ustime

import (
	"testing"
	"time"
)

func TestSpanConversions(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected Span
	}{
		{0, 0},
		{time.Microsecond, 1},
		{30 * time.Second, 30_000_000},
		{1500 * time.Nanosecond, 1}, // sub-microsecond truncated
	}

	for i, test := range tests {
		if got := SpanFromDuration(test.duration); got != test.expected {
			t.Errorf("TestSpanConversions #%d failed: got %d want %d", i, got, test.expected)
		}
	}

	if got := SpanFromSeconds(300); got.Microseconds() != 300_000_000 {
		t.Errorf("TestSpanConversions: SpanFromSeconds(300) = %d, want 300000000", got)
	}
	if got := SpanFromSeconds(30).Duration(); got != 30*time.Second {
		t.Errorf("TestSpanConversions: Duration round trip got %s want 30s", got)
	}
}

func TestUnixMicroRoundTrip(t *testing.T) {
	tests := []int64{0, 1, 1_600_000_000_123_456}

	for i, us := range tests {
		if got := TimeToUnixMicro(UnixMicroToTime(us)); got != us {
			t.Errorf("TestUnixMicroRoundTrip #%d failed: got %d want %d", i, got, us)
		}
	}
}

func TestReduceToMicrosecondPrecision(t *testing.T) {
	withNanos := time.Unix(1_600_000_000, 123_456_789)
	reduced := ReduceToMicrosecondPrecision(withNanos)
	if reduced.Nanosecond() != 123_456_000 {
		t.Errorf("TestReduceToMicrosecondPrecision: got %d nanoseconds, want 123456000",
			reduced.Nanosecond())
	}
}
