package video

// Package video turns a pasted YouTube URL into a VideoDescriptor: it
// extracts the 11-character video identifier, derives a deterministic
// placeholder duration from it, and performs a best-effort title lookup
// against the public oEmbed endpoint. No real stream data is ever fetched.
