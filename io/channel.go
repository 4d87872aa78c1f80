// Package io provides output channel implementations for the LS-8 emulator.
// The CPU writes register values to a channel with PRN (decimal) and
// PRA (character); the host decides where they end up.
package io

// Channel defines the interface for the LS-8 output channel.
// Channels are append-only sinks.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Number emits the decimal representation of value.
	Number(value uint8) error
	// Char emits value as a single ASCII character.
	Char(value uint8) error
}
