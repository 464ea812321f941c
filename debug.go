//go:build necsdebug

package necs

// debugChecks enables contract assertions: out-of-range dense indices,
// GetLast on an empty Vec and lockstep violations between the two dense
// arrays all panic. Build with -tags necsdebug during development.
const debugChecks = true
