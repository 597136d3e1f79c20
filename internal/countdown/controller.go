package countdown

import "fmt"

// Controller is the command surface the presentation layers talk to. It
// holds the user's selection and the engine that runs countdowns.
//
// The selection is owned by the caller's goroutine; only the engine is
// safe for concurrent use.
type Controller struct {
	selection Selection
	engine    *Engine
}

// NewController wraps engine with an all-zero selection. The controller
// takes ownership of the engine and closes it in Close.
func NewController(engine *Engine) *Controller {
	return &Controller{engine: engine}
}

func (c *Controller) SelectHours(h int) {
	c.selection = c.selection.WithHours(h)
}

func (c *Controller) SelectMinutes(m int) {
	c.selection = c.selection.WithMinutes(m)
}

func (c *Controller) SelectSeconds(s int) {
	c.selection = c.selection.WithSeconds(s)
}

func (c *Controller) Selection() Selection {
	return c.selection
}

// Start counts down from hours:minutes:seconds. A duration whose total
// overflows is rejected like a negative one.
func (c *Controller) Start(hours, minutes, seconds int) (State, error) {
	total, ok := Selection{Hours: hours, Minutes: minutes, Seconds: seconds}.Total()
	if !ok {
		return c.engine.State(), fmt.Errorf("%w: %dh %dm %ds overflows", ErrInvalidArgument, hours, minutes, seconds)
	}
	return c.engine.Start(total)
}

// StartSelected counts down from the current selection.
func (c *Controller) StartSelected() (State, error) {
	s := c.selection
	return c.Start(s.Hours, s.Minutes, s.Seconds)
}

func (c *Controller) Pause() (State, error) {
	return c.engine.Pause()
}

func (c *Controller) Resume() (State, error) {
	return c.engine.Resume()
}

func (c *Controller) Cancel() (State, error) {
	return c.engine.Cancel()
}

// Toggle pauses a running countdown, resumes a paused one and starts the
// selection when idle.
func (c *Controller) Toggle() (State, error) {
	switch c.engine.Status() {
	case StatusRunning:
		return c.Pause()
	case StatusPaused:
		return c.Resume()
	default:
		return c.StartSelected()
	}
}

func (c *Controller) State() State {
	return c.engine.State()
}

func (c *Controller) Remaining() (int, bool) {
	return c.engine.Remaining()
}

func (c *Controller) Status() Status {
	return c.engine.Status()
}

func (c *Controller) Subscribe() (<-chan Event, func()) {
	return c.engine.Subscribe()
}

func (c *Controller) Close() error {
	return c.engine.Close()
}
