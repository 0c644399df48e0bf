package platform

// Package platform contains OS integration helpers: output directory
// handling and opening exported clips in the system file manager.
