package caret

// PositionChange carries the prior and new caret location.
type PositionChange struct {
	// Old is where the caret was before the mutation.
	Old Position

	// New is where the caret is now.
	New Position
}

// ModeChange carries the prior and new caret mode.
type ModeChange struct {
	Old Mode
	New Mode
}

// PositionHandler receives position-changed notifications.
type PositionHandler func(PositionChange)

// ModeHandler receives mode-changed notifications.
type ModeHandler func(ModeChange)

// positionListener pairs a handler with its registration ID.
type positionListener struct {
	id int
	fn PositionHandler
}

type modeListener struct {
	id int
	fn ModeHandler
}

// OnPositionChanged registers a handler fired synchronously after every
// public mutating call that results in a net position change. The handler
// runs on the caller's goroutine. The returned function removes the
// registration.
func (c *Caret) OnPositionChanged(fn PositionHandler) func() {
	c.nextListenerID++
	id := c.nextListenerID
	c.positionListeners = append(c.positionListeners, positionListener{id: id, fn: fn})
	return func() {
		for i, l := range c.positionListeners {
			if l.id == id {
				c.positionListeners = append(c.positionListeners[:i], c.positionListeners[i+1:]...)
				return
			}
		}
	}
}

// OnModeChanged registers a handler fired synchronously on every mode
// change. The returned function removes the registration.
func (c *Caret) OnModeChanged(fn ModeHandler) func() {
	c.nextListenerID++
	id := c.nextListenerID
	c.modeListeners = append(c.modeListeners, modeListener{id: id, fn: fn})
	return func() {
		for i, l := range c.modeListeners {
			if l.id == id {
				c.modeListeners = append(c.modeListeners[:i], c.modeListeners[i+1:]...)
				return
			}
		}
	}
}

// notifyPosition delivers a position change to all registered handlers.
func (c *Caret) notifyPosition(change PositionChange) {
	for _, l := range c.positionListeners {
		if l.fn != nil {
			l.fn(change)
		}
	}
}

// notifyMode delivers a mode change to all registered handlers.
func (c *Caret) notifyMode(change ModeChange) {
	for _, l := range c.modeListeners {
		if l.fn != nil {
			l.fn(change)
		}
	}
}
