//go:build !raveldebug

package view

const debugChecks = false
