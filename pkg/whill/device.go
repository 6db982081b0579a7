package whill

import (
	"io"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/whill.go/pkg/whill/comm"
	"github.com/robotalks/whill.go/pkg/whill/data"
)

// DefaultMaxFramesPerPoll bounds a single Poll on a busy stream.
const DefaultMaxFramesPerPoll = 16

// Device is a WHILL attached to a byte stream.
//
// The stream's Read must return within bounded time when nothing arrives,
// either with no data or a timeout error, otherwise Poll blocks.
type Device struct {
	// Layout decodes status datasets.
	Layout data.Layout
	// MaxFramesPerPoll limits frames decoded in one Poll, <= 0 means no limit.
	MaxFramesPerPoll int

	rw        io.ReadWriter
	reader    *comm.Reader
	writeLock sync.Mutex
	sleep     func(time.Duration)

	telemetry     data.Telemetry
	telemetryLock sync.RWMutex

	events eventTable
	holder Holder
}

// New creates a Device over rw using the standard layout.
func New(rw io.ReadWriter) *Device {
	d := &Device{
		Layout:           data.LayoutStandard,
		MaxFramesPerPoll: DefaultMaxFramesPerPoll,
		rw:               rw,
		reader:           comm.NewReader(rw),
		sleep:            time.Sleep,
	}
	d.holder.Sender = d
	return d
}

// WithLayout sets the telemetry layout.
func (d *Device) WithLayout(l data.Layout) *Device {
	d.Layout = l
	return d
}

// Close stops any hold session and closes the stream if it's closable.
func (d *Device) Close() error {
	d.holder.Stop()
	d.holder.Wait()
	if c, ok := d.rw.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Register installs the handler for an event kind, replacing the previous
// one. A nil handler clears the registration. It returns false if kind is
// unknown.
func (d *Device) Register(kind EventKind, h Handler) bool {
	return d.events.register(kind, h)
}

// Telemetry returns a copy of the latest decoded telemetry.
func (d *Device) Telemetry() data.Telemetry {
	d.telemetryLock.RLock()
	defer d.telemetryLock.RUnlock()
	return d.telemetry
}

// SpeedProfile returns the last reported profile of a speed mode.
func (d *Device) SpeedProfile(mode int) (data.SpeedProfile, error) {
	if !data.ValidSpeedMode(mode) {
		return data.SpeedProfile{}, data.ErrSpeedMode
	}
	d.telemetryLock.RLock()
	defer d.telemetryLock.RUnlock()
	return d.telemetry.SpeedProfiles[mode], nil
}

// Poll reads and decodes frames until the stream goes idle.
// It returns true if at least one dataset or power-on notice was handled.
// Malformed frames are dropped. Only transport errors are returned.
func (d *Device) Poll() (bool, error) {
	var handled bool
	for frames := 0; d.MaxFramesPerPoll <= 0 || frames < d.MaxFramesPerPoll; {
		f, err := d.reader.ReadFrame()
		switch err {
		case nil:
		case comm.ErrIdle:
			return handled, nil
		case comm.ErrNoFrame:
			continue
		case comm.ErrShortFrame:
			glog.V(2).Info("RX short frame dropped")
			continue
		default:
			return handled, err
		}
		frames++
		if !f.Valid() {
			glog.V(2).Infof("RX %s checksum mismatch, dropped", f)
			continue
		}
		glog.V(2).Infof("RX %s", f)
		if d.dispatch(f.Payload) {
			handled = true
		}
	}
	return handled, nil
}

func (d *Device) dispatch(payload []byte) bool {
	d.telemetryLock.Lock()
	res, err := d.Layout.Decode(&d.telemetry, payload)
	d.telemetryLock.Unlock()
	if err != nil {
		glog.V(2).Infof("RX payload %x dropped: %v", payload, err)
		return false
	}
	switch res {
	case data.ProfileReport:
		d.events.fire(d, EventDataSet0)
	case data.StatusReport:
		d.events.fire(d, EventDataSet1)
	case data.PowerOn:
		d.events.fire(d, EventPowerOn)
	default:
		glog.V(2).Infof("RX payload %x unhandled", payload)
		return false
	}
	return true
}

func (d *Device) send(id comm.CommandID, args ...int) (int, error) {
	cmd, err := comm.NewCommand(id, args...)
	if err != nil {
		return 0, err
	}
	b := comm.Encode(comm.Sign, cmd.Bytes())
	d.writeLock.Lock()
	n, err := d.rw.Write(b)
	d.writeLock.Unlock()
	if err != nil {
		return n, err
	}
	glog.V(2).Infof("TX %s % x", id, b)
	return n, nil
}
