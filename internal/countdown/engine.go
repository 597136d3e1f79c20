package countdown

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
)

// Engine owns the countdown. Its state is only touched by the loop
// goroutine; exported methods hand work to the loop and wait for it.
type Engine struct {
	clock    Clock
	interval time.Duration
	buffer   int
	logger   *log.Logger

	cmds      chan func()
	ticks     chan tick
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	// Loop-owned.
	state   State
	gen     uint64
	timer   Timer
	subs    map[int]chan Event
	nextSub int
}

type tick struct {
	gen uint64
	ack chan struct{}
}

type Option func(*Engine)

func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithInterval sets the delay between publications. Defaults to one second.
func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithBuffer sets the per-subscriber event buffer.
func WithBuffer(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.buffer = n
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine returns an idle engine with its loop running. Call Close to
// stop the tick process and release the loop.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clock:    RealClock(),
		interval: config.TickInterval,
		buffer:   config.SubscriberBuffer,
		logger:   log.Default(),
		cmds:     make(chan func()),
		ticks:    make(chan tick),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		subs:     make(map[int]chan Event),
	}
	for _, opt := range opts {
		opt(e)
	}
	go e.run()
	return e
}

func (e *Engine) run() {
	defer close(e.done)
	for {
		select {
		case fn := <-e.cmds:
			fn()
		case t := <-e.ticks:
			e.handleTick(t.gen)
			close(t.ack)
		case <-e.quit:
			e.shutdown()
			return
		}
	}
}

// do runs fn on the loop and waits for it to finish.
func (e *Engine) do(fn func()) error {
	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		fn()
	}
	select {
	case e.cmds <- wrapped:
	case <-e.done:
		return ErrClosed
	}
	<-finished
	return nil
}

// Start cancels any countdown in progress and counts down from total
// seconds. A negative total is rejected and leaves the state untouched.
func (e *Engine) Start(total int) (State, error) {
	if total < 0 {
		return e.State(), fmt.Errorf("%w: negative duration %d", ErrInvalidArgument, total)
	}
	var st State
	err := e.do(func() {
		e.stopTicking()
		e.transition(CauseStarted, Running(total))
		if total == 0 {
			e.transition(CauseCompleted, Idle())
		} else {
			e.arm()
		}
		st = e.state
	})
	if err != nil {
		return Idle(), err
	}
	return st, nil
}

// Pause stops the tick process and keeps the remaining value. It is a
// no-op unless the engine is running.
func (e *Engine) Pause() (State, error) {
	var st State
	err := e.do(func() {
		if e.state.IsRunning() {
			e.stopTicking()
			e.transition(CausePaused, Paused(e.state.remaining))
		}
		st = e.state
	})
	if err != nil {
		return Idle(), err
	}
	return st, nil
}

// Resume continues a paused countdown from its remaining value. It is a
// no-op unless the engine is paused.
func (e *Engine) Resume() (State, error) {
	var st State
	err := e.do(func() {
		if e.state.IsPaused() {
			e.stopTicking()
			if e.state.remaining > 0 {
				e.transition(CauseResumed, Running(e.state.remaining))
				e.arm()
			} else {
				e.transition(CauseCompleted, Idle())
			}
		}
		st = e.state
	})
	if err != nil {
		return Idle(), err
	}
	return st, nil
}

// Cancel stops any countdown and returns to idle. Cancelling an idle
// engine publishes nothing.
func (e *Engine) Cancel() (State, error) {
	var st State
	err := e.do(func() {
		e.stopTicking()
		if !e.state.IsIdle() {
			e.transition(CauseCancelled, Idle())
		}
		st = e.state
	})
	if err != nil {
		return Idle(), err
	}
	return st, nil
}

// State returns the current state. A closed engine is always idle.
func (e *Engine) State() State {
	var st State
	if err := e.do(func() { st = e.state }); err != nil {
		return Idle()
	}
	return st
}

func (e *Engine) Status() Status {
	return e.State().Status()
}

func (e *Engine) Remaining() (int, bool) {
	return e.State().Remaining()
}

// Subscribe returns a channel receiving every event published from now
// on, and a func that unsubscribes. The channel is closed on unsubscribe
// or when the engine closes. Events are dropped for a subscriber whose
// buffer is full.
func (e *Engine) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, e.buffer)
	var id int
	err := e.do(func() {
		id = e.nextSub
		e.nextSub++
		e.subs[id] = ch
	})
	if err != nil {
		close(ch)
		return ch, func() {}
	}
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			_ = e.do(func() {
				if sub, ok := e.subs[id]; ok {
					delete(e.subs, id)
					close(sub)
				}
			})
		})
	}
}

// Close cancels the tick process, publishes CauseClosed if a countdown
// was active, closes every subscriber channel and stops the loop.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() { close(e.quit) })
	<-e.done
	return nil
}

// Done is closed once the engine has shut down.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

func (e *Engine) handleTick(gen uint64) {
	if gen != e.gen || !e.state.IsRunning() {
		return
	}
	e.timer = nil
	next := e.state.remaining - 1
	e.transition(CauseTicked, Running(next))
	if next <= 0 {
		e.stopTicking()
		e.transition(CauseCompleted, Idle())
		return
	}
	e.arm()
}

// arm schedules the next tick for the current generation. The callback
// blocks until the loop has handled the tick, so the following tick is
// armed before the callback returns.
func (e *Engine) arm() {
	gen := e.gen
	e.timer = e.clock.AfterFunc(e.interval, func() {
		t := tick{gen: gen, ack: make(chan struct{})}
		select {
		case e.ticks <- t:
		case <-e.done:
			return
		}
		<-t.ack
	})
}

// stopTicking cancels the tick process. Bumping the generation discards a
// tick whose callback already fired but has not reached the loop yet.
func (e *Engine) stopTicking() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
}

func (e *Engine) transition(cause Cause, next State) {
	ev := Event{
		Cause: cause,
		Prev:  e.state,
		State: next,
		At:    e.clock.Now(),
	}
	e.state = next
	for id, ch := range e.subs {
		select {
		case ch <- ev:
		default:
			if e.logger != nil {
				e.logger.Printf("countdown: subscriber %d full, dropped %s", id, ev)
			}
		}
	}
}

func (e *Engine) shutdown() {
	e.stopTicking()
	if !e.state.IsIdle() {
		e.transition(CauseClosed, Idle())
	}
	for id, ch := range e.subs {
		delete(e.subs, id)
		close(ch)
	}
}
