package utility

import "time"

// UnixNanos is a UNIX epoch timestamp with nanosecond resolution.
type UnixNanos uint64

const NanosPerMicro UnixNanos = 1_000

func UnixNanosFromTime(t time.Time) UnixNanos {
	return UnixNanos(I64ToU64Unsafe(t.UnixNano()))
}

func (n UnixNanos) Time() time.Time {
	return time.Unix(0, U64ToI64Unsafe(uint64(n))).UTC()
}

func (n UnixNanos) String() string {
	return n.Time().Format(time.RFC3339Nano)
}
