//go:build !necsdebug

package necs

// debugChecks is false in release builds; the guarded assertions are
// const-folded away.
const debugChecks = false
