package synth

// Package synth builds placeholder media buffers. Each buffer carries the
// header bytes of a real container format followed by a deterministic
// filler pattern; no actual audio or video samples are produced.
