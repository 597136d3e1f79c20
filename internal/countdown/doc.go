// Package countdown implements the countdown timer core: the user's
// hours/minutes/seconds selection, and an Engine that owns the remaining
// time, runs one cancellable tick process at a time and publishes every
// state change to subscribers.
//
// All engine state lives on a single goroutine. Commands are applied on
// that goroutine and return once they have taken effect, so a tick
// scheduled before a command can never publish after it.
package countdown
