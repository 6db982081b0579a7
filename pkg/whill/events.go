package whill

import "sync"

// EventKind identifies what happened during Poll.
type EventKind int

// Event kinds.
const (
	// EventDataSet0 fires after a speed profile report is decoded.
	EventDataSet0 EventKind = iota
	// EventDataSet1 fires after a status report is decoded.
	EventDataSet1
	// EventPowerOn fires when the device reports it has been powered on.
	EventPowerOn

	eventKinds
)

var eventNames = [eventKinds]string{"data_set_0", "data_set_1", "power_on"}

// String implements fmt.Stringer.
func (k EventKind) String() string {
	if k.IsValid() {
		return eventNames[k]
	}
	return "unknown"
}

// EventKinds returns all event kinds.
func EventKinds() []EventKind {
	kinds := make([]EventKind, 0, eventKinds)
	for k := EventKind(0); k < eventKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// IsValid checks if it's a known event kind.
func (k EventKind) IsValid() bool {
	return k >= 0 && k < eventKinds
}

// Handler is called when an event fires.
type Handler interface {
	HandleEvent(*Device, EventKind)
}

// HandleEventFunc is func type of Handler.
type HandleEventFunc func(*Device, EventKind)

// HandleEvent implements Handler.
func (f HandleEventFunc) HandleEvent(d *Device, kind EventKind) {
	f(d, kind)
}

// EventMux forwards an event to multiple handlers in order.
type EventMux []Handler

// HandleEvent implements Handler.
func (m EventMux) HandleEvent(d *Device, kind EventKind) {
	for _, h := range m {
		h.HandleEvent(d, kind)
	}
}

type eventTable struct {
	handlers [eventKinds]Handler
	lock     sync.Mutex
}

func (t *eventTable) register(kind EventKind, h Handler) bool {
	if !kind.IsValid() {
		return false
	}
	t.lock.Lock()
	t.handlers[kind] = h
	t.lock.Unlock()
	return true
}

func (t *eventTable) fire(d *Device, kind EventKind) {
	t.lock.Lock()
	h := t.handlers[kind]
	t.lock.Unlock()
	if h != nil {
		h.HandleEvent(d, kind)
	}
}
