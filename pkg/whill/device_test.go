package whill

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/whill.go/pkg/whill/comm"
	"github.com/robotalks/whill.go/pkg/whill/data"
)

// fakeTransport returns queued chunks on Read and records each Write.
// A drained read returns (0, nil) like a serial read timeout.
type fakeTransport struct {
	lock     sync.Mutex
	chunks   [][]byte
	writes   [][]byte
	readErr  error
	writeErr error
	// writes before failFrom succeed even with writeErr set.
	failFrom int
}

func (t *fakeTransport) feed(chunks ...[]byte) {
	t.lock.Lock()
	t.chunks = append(t.chunks, chunks...)
	t.lock.Unlock()
}

func (t *fakeTransport) Read(p []byte) (int, error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	if len(t.chunks) == 0 {
		return 0, t.readErr
	}
	n := copy(p, t.chunks[0])
	if t.chunks[0] = t.chunks[0][n:]; len(t.chunks[0]) == 0 {
		t.chunks = t.chunks[1:]
	}
	return n, nil
}

func (t *fakeTransport) Write(p []byte) (int, error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.writeErr != nil && len(t.writes) >= t.failFrom {
		return 0, t.writeErr
	}
	t.writes = append(t.writes, append([]byte(nil), p...))
	return len(p), nil
}

func (t *fakeTransport) written() [][]byte {
	t.lock.Lock()
	defer t.lock.Unlock()
	return append([][]byte(nil), t.writes...)
}

func frameOf(payload ...byte) []byte {
	return comm.Encode(comm.Sign, payload)
}

func statusPayload() []byte {
	p := make([]byte, 30)
	p[0] = byte(data.DataSetStatus)
	p[13], p[14] = 20, 0xf6 // joystick 20,-10
	p[15] = 80
	p[26] = 1
	p[29] = 42
	return p
}

func newTestDevice() (*Device, *fakeTransport) {
	t := &fakeTransport{}
	d := New(t)
	d.sleep = func(time.Duration) {}
	return d, t
}

func TestPollIdle(t *testing.T) {
	d, _ := newTestDevice()
	handled, err := d.Poll()
	require.NoError(t, err)
	require.False(t, handled)
}

func TestPollDispatchesEvents(t *testing.T) {
	d, tr := newTestDevice()
	var kinds []EventKind
	h := HandleEventFunc(func(dev *Device, kind EventKind) {
		require.Same(t, d, dev)
		kinds = append(kinds, kind)
	})
	require.True(t, d.Register(EventDataSet0, h))
	require.True(t, d.Register(EventDataSet1, h))
	require.True(t, d.Register(EventPowerOn, h))

	tr.feed(
		frameOf(statusPayload()...),
		frameOf(0, 2, 1, 2, 3, 4, 5, 6, 7, 8, 9),
		frameOf(data.PowerOnNotice),
	)
	handled, err := d.Poll()
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, []EventKind{EventDataSet1, EventDataSet0, EventPowerOn}, kinds)

	tm := d.Telemetry()
	require.Equal(t, data.Joy{Front: 20, Side: -10}, tm.Joy)
	require.Equal(t, uint8(80), tm.Battery.Level)
	require.True(t, tm.PowerStatus)
	require.Equal(t, 42, tm.TimestampCurrent)
	require.Equal(t, uint32(1), tm.SeqDataSet0)
	require.Equal(t, uint32(1), tm.SeqDataSet1)
	require.Equal(t, data.DataSetProfile, tm.LatestDataSet)

	p, err := d.SpeedProfile(2)
	require.NoError(t, err)
	require.Equal(t, uint8(1), p.ForwardSpeed)
	require.Equal(t, uint8(9), p.TurnDeceleration)
	_, err = d.SpeedProfile(6)
	require.ErrorIs(t, err, data.ErrSpeedMode)
}

func TestPollDropsBadFrames(t *testing.T) {
	d, tr := newTestDevice()
	var fired int
	d.Register(EventDataSet1, HandleEventFunc(func(*Device, EventKind) { fired++ }))

	bad := frameOf(statusPayload()...)
	bad[len(bad)-1] ^= 0xff
	tr.feed(
		[]byte{0x00, 0x13},           // noise
		bad,                          // checksum mismatch
		frameOf(0x7f, 1, 2),          // unknown dataset
		frameOf(0, 6, 1, 2, 3, 4, 5), // short profile
		frameOf(statusPayload()...),
	)
	handled, err := d.Poll()
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, 1, fired)
	require.Equal(t, uint32(1), d.Telemetry().SeqDataSet1)
	require.Zero(t, d.Telemetry().SeqDataSet0)
}

func TestPollUnhandledOnly(t *testing.T) {
	d, tr := newTestDevice()
	tr.feed(frameOf(0x7f, 1, 2))
	handled, err := d.Poll()
	require.NoError(t, err)
	require.False(t, handled)
}

func TestPollMaxFrames(t *testing.T) {
	d, tr := newTestDevice()
	d.MaxFramesPerPoll = 2
	for i := 0; i < 3; i++ {
		tr.feed(frameOf(statusPayload()...))
	}
	_, err := d.Poll()
	require.NoError(t, err)
	require.Equal(t, uint32(2), d.Telemetry().SeqDataSet1)
	_, err = d.Poll()
	require.NoError(t, err)
	require.Equal(t, uint32(3), d.Telemetry().SeqDataSet1)
}

func TestPollReadError(t *testing.T) {
	d, tr := newTestDevice()
	tr.readErr = errors.New("unplugged")
	_, err := d.Poll()
	require.EqualError(t, err, "unplugged")
}

func TestRegister(t *testing.T) {
	d, tr := newTestDevice()
	require.False(t, d.Register(EventKind(7), nil))
	require.False(t, d.Register(EventKind(-1), nil))

	var first, second int
	d.Register(EventPowerOn, HandleEventFunc(func(*Device, EventKind) { first++ }))
	d.Register(EventPowerOn, HandleEventFunc(func(*Device, EventKind) { second++ }))
	tr.feed(frameOf(data.PowerOnNotice))
	_, err := d.Poll()
	require.NoError(t, err)
	require.Zero(t, first)
	require.Equal(t, 1, second)

	require.True(t, d.Register(EventPowerOn, nil))
	tr.feed(frameOf(data.PowerOnNotice))
	handled, err := d.Poll()
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, 1, second)
}

func TestEventMux(t *testing.T) {
	d, tr := newTestDevice()
	var calls []string
	d.Register(EventDataSet1, EventMux{
		HandleEventFunc(func(*Device, EventKind) { calls = append(calls, "a") }),
		HandleEventFunc(func(*Device, EventKind) { calls = append(calls, "b") }),
	})
	tr.feed(frameOf(statusPayload()...))
	_, err := d.Poll()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, calls)
}

func TestEventKindString(t *testing.T) {
	require.Equal(t, "data_set_0", EventDataSet0.String())
	require.Equal(t, "power_on", EventPowerOn.String())
	require.Equal(t, "unknown", EventKind(9).String())
}

func TestClose(t *testing.T) {
	d, tr := newTestDevice()
	d.holder.Tick = time.Millisecond
	require.NoError(t, d.HoldJoy(10, 0, time.Second))
	require.NoError(t, d.Close())
	require.Equal(t, HoldCancelled, d.Holder().State())
	n := len(tr.written())
	time.Sleep(5 * time.Millisecond)
	require.Len(t, tr.written(), n)
}
