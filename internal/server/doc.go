// Package server runs the local HTTP emulator.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by a timeout.
package server
