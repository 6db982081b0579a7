package whill

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/golang/glog"
)

// Hold timing.
const (
	HoldTick       = 100 * time.Millisecond
	MaxHoldTimeout = 60 * time.Second
)

// ControlType selects the command a hold session repeats.
type ControlType int

// Control types.
const (
	ControlJoystick ControlType = iota
	ControlVelocity
)

// String implements fmt.Stringer.
func (c ControlType) String() string {
	switch c {
	case ControlJoystick:
		return "joystick"
	case ControlVelocity:
		return "velocity"
	}
	return "unknown"
}

// HoldState is the state of a hold session.
type HoldState int

// Hold states.
const (
	HoldIdle HoldState = iota
	HoldRunning
	HoldExpired
	HoldCancelled
	HoldFailed
)

var holdStateNames = []string{"idle", "running", "expired", "cancelled", "failed"}

// String implements fmt.Stringer.
func (s HoldState) String() string {
	if s >= 0 && int(s) < len(holdStateNames) {
		return holdStateNames[s]
	}
	return "unknown"
}

// MotionSender sends the commands repeated by a Holder.
type MotionSender interface {
	SendJoystick(front, side int) (int, error)
	SendVelocity(front, side int16) (int, error)
}

// HoldStatus is a snapshot of the current or last hold session.
type HoldStatus struct {
	State   HoldState
	Control ControlType
	Front   int
	Side    int
	Elapsed time.Duration
	Timeout time.Duration
	// Err is the write error when State is HoldFailed.
	Err error
}

// Holder repeats a motion command in the background.
// At most one session runs at a time, a new one supersedes the previous.
type Holder struct {
	Sender MotionSender
	// Tick is the repeat interval, HoldTick if zero.
	Tick time.Duration

	startLock sync.Mutex
	session   *holdSession

	statusLock sync.Mutex
	status     HoldStatus
}

type holdSession struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (h *Holder) tick() time.Duration {
	if h.Tick > 0 {
		return h.Tick
	}
	return HoldTick
}

// Start cancels the running session, waits for it to end and starts a new
// one. The timeout is clamped to MaxHoldTimeout.
func (h *Holder) Start(ctl ControlType, front, side int, timeout time.Duration) error {
	if err := validateHold(ctl, front, side); err != nil {
		return err
	}
	if timeout > MaxHoldTimeout {
		glog.Warningf("hold timeout %s clamped to %s", timeout, MaxHoldTimeout)
		timeout = MaxHoldTimeout
	} else if timeout < 0 {
		timeout = 0
	}

	h.startLock.Lock()
	defer h.startLock.Unlock()
	if s := h.session; s != nil {
		s.cancel()
		<-s.done
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &holdSession{cancel: cancel, done: make(chan struct{})}
	h.session = s
	h.setStatus(HoldStatus{
		State:   HoldRunning,
		Control: ctl,
		Front:   front,
		Side:    side,
		Timeout: timeout,
	})
	go h.run(ctx, s)
	return nil
}

// Stop requests the running session to end. It doesn't wait.
func (h *Holder) Stop() {
	h.startLock.Lock()
	s := h.session
	h.startLock.Unlock()
	if s != nil {
		s.cancel()
	}
}

// Wait blocks until the current session ends.
func (h *Holder) Wait() {
	h.startLock.Lock()
	s := h.session
	h.startLock.Unlock()
	if s != nil {
		<-s.done
	}
}

// Status returns the current or last session.
func (h *Holder) Status() HoldStatus {
	h.statusLock.Lock()
	defer h.statusLock.Unlock()
	return h.status
}

// State returns the state of the current or last session.
func (h *Holder) State() HoldState {
	return h.Status().State
}

func (h *Holder) setStatus(st HoldStatus) {
	h.statusLock.Lock()
	h.status = st
	h.statusLock.Unlock()
}

func (h *Holder) run(ctx context.Context, s *holdSession) {
	defer close(s.done)
	defer s.cancel()

	st := h.Status()
	tick := h.tick()
	state := HoldExpired
	var err error
loop:
	for st.Elapsed < st.Timeout {
		if ctx.Err() != nil {
			state = HoldCancelled
			break
		}
		st.Elapsed += tick
		if err = h.sendOnce(&st); err != nil {
			glog.Errorf("hold %s: %v", st.Control, err)
			state = HoldFailed
			break
		}
		h.statusLock.Lock()
		h.status.Elapsed = st.Elapsed
		h.statusLock.Unlock()

		timer := time.NewTimer(tick)
		select {
		case <-ctx.Done():
			timer.Stop()
			state = HoldCancelled
			break loop
		case <-timer.C:
		}
	}

	h.statusLock.Lock()
	h.status.State, h.status.Err = state, err
	h.status.Elapsed = st.Elapsed
	h.statusLock.Unlock()
	glog.V(1).Infof("hold %s %s after %s", st.Control, state, st.Elapsed)
}

func (h *Holder) sendOnce(st *HoldStatus) error {
	var err error
	switch st.Control {
	case ControlJoystick:
		_, err = h.Sender.SendJoystick(st.Front, st.Side)
	case ControlVelocity:
		_, err = h.Sender.SendVelocity(int16(st.Front), int16(st.Side))
	default:
		err = ErrInvalidControl
	}
	return err
}

func validateHold(ctl ControlType, front, side int) error {
	switch ctl {
	case ControlJoystick:
		if front < math.MinInt8 || front > math.MaxInt8 || side < math.MinInt8 || side > math.MaxInt8 {
			return fmt.Errorf("hold joystick %d,%d out of range", front, side)
		}
	case ControlVelocity:
		if front < math.MinInt16 || front > math.MaxInt16 || side < math.MinInt16 || side > math.MaxInt16 {
			return fmt.Errorf("hold velocity %d,%d out of range", front, side)
		}
	default:
		return ErrInvalidControl
	}
	return nil
}

// Holder returns the hold controller of the device.
func (d *Device) Holder() *Holder {
	return &d.holder
}

// HoldJoy repeats SendJoystick every HoldTick until timeout or Unhold.
func (d *Device) HoldJoy(front, side int, timeout time.Duration) error {
	return d.holder.Start(ControlJoystick, front, side, timeout)
}

// HoldVelocity repeats SendVelocity every HoldTick until timeout or Unhold.
func (d *Device) HoldVelocity(front, side int16, timeout time.Duration) error {
	return d.holder.Start(ControlVelocity, int(front), int(side), timeout)
}

// Unhold stops the running hold session, if any.
func (d *Device) Unhold() {
	d.holder.Stop()
}

// WaitHold blocks until the running hold session ends.
func (d *Device) WaitHold() {
	d.holder.Wait()
}
