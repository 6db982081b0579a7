package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/robotalks/whill.go/pkg/bridge"
	"github.com/robotalks/whill.go/pkg/msgs"
	"github.com/robotalks/whill.go/pkg/whill"
)

type fakeCommander struct {
	bridge.Commander
	velocity chan [2]int16
}

func (c *fakeCommander) SendVelocity(front, side int16) (int, error) {
	c.velocity <- [2]int16{front, side}
	return 9, nil
}

type idleStream struct{}

func (idleStream) Read([]byte) (int, error)    { return 0, nil }
func (idleStream) Write(p []byte) (int, error) { return len(p), nil }

func dial(t *testing.T, s *Server) *websocket.Conn {
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	conn, err := websocket.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+Path, "", srv.URL)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func receive(t *testing.T, conn *websocket.Conn) msgs.Message {
	var env Envelope
	require.NoError(t, websocket.JSON.Receive(conn, &env))
	msg, err := env.Open()
	require.NoError(t, err)
	return msg
}

func TestCommandAndEvents(t *testing.T) {
	cmd := &fakeCommander{velocity: make(chan [2]int16, 1)}
	s := &Server{Commander: cmd}
	conn := dial(t, s)

	require.NoError(t, websocket.Message.Send(conn, `{"type":"velocity","msg":{"front":800,"side":-100}}`))
	res := receive(t, conn).(*msgs.Result)
	require.True(t, res.Ok, res.Error)
	require.Equal(t, [2]int16{800, -100}, <-cmd.velocity)

	s.HandleEvent(whill.New(idleStream{}), whill.EventPowerOn)
	require.IsType(t, &msgs.PowerOn{}, receive(t, conn))

	s.HandleEvent(whill.New(idleStream{}), whill.EventDataSet1)
	require.IsType(t, &msgs.Status{}, receive(t, conn))
}

func TestCommandRejected(t *testing.T) {
	s := &Server{Commander: &fakeCommander{}}
	conn := dial(t, s)

	require.NoError(t, websocket.Message.Send(conn, `{"type":"velocity","msg":{"front":2000}}`))
	res := receive(t, conn).(*msgs.Result)
	require.False(t, res.Ok)
	require.Contains(t, res.Error, "out of range")

	require.NoError(t, websocket.Message.Send(conn, `{"type":"fly"}`))
	res = receive(t, conn).(*msgs.Result)
	require.Equal(t, "fly", res.Command)
	require.False(t, res.Ok)
}

func TestEnvelope(t *testing.T) {
	env, err := EnvelopeOf(&msgs.Joystick{Front: 10})
	require.NoError(t, err)
	b, err := json.Marshal(env)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"joystick","msg":{"front":10}}`, string(b))

	env = &Envelope{Type: "joystick", Msg: json.RawMessage(`{"front":"x"}`)}
	_, err = env.Open()
	require.Error(t, err)
}
