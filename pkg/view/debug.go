//go:build raveldebug

package view

// With the raveldebug build tag, misuse that is recoverable in release
// builds (such as duplicate keys in a keyed sequence) panics instead.
const debugChecks = true
