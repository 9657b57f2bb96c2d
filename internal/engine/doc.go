// Package engine implements jot's capture workflow.
//
// The engine owns the decision logic: flag dispatch, first-time setup,
// idea capture and git synchronization. It reaches the outside world only
// through the capability interfaces defined in this package, so the whole
// workflow runs unchanged against real implementations and test doubles.
package engine
