//go:build ecsdebug

package ecs

// debugChecks enables the per-call leak check and phase ordering assertions.
// Build with -tags ecsdebug to turn them on.
const debugChecks = true
