package model

// Package model defines the domain entities shared across the application:
// video descriptors, trim ranges, clip formats, and export task state.
