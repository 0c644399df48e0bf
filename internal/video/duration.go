package video

import "math/rand"

// Synthetic duration bounds
const (
	DurationModulo = 1200
	DurationOffset = 60

	FallbackDurationMin   = 120
	FallbackDurationRange = 600
)

// SyntheticDuration deterministically derives a plausible duration in
// seconds from a video identifier. The accumulator is a multiplicative
// string hash kept in 32-bit signed arithmetic, wrapping at every step,
// so the result is bit-identical across runs and platforms. The returned
// value lies in [60, 1259].
func SyntheticDuration(videoID string) int {
	var acc int32
	for _, ch := range videoID {
		acc = acc*31 - acc + int32(ch)
	}

	abs := int64(acc)
	if abs < 0 {
		abs = -abs
	}

	return int(abs%DurationModulo) + DurationOffset
}

// FallbackDuration returns a random duration in [120, 720). It is used
// only when descriptor assembly fails before a synthetic duration could be
// derived; unlike SyntheticDuration it is intentionally not reproducible.
func FallbackDuration() int {
	return FallbackDurationMin + rand.Intn(FallbackDurationRange)
}
