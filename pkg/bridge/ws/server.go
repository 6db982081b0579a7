// Package ws streams device events to WebSocket clients and accepts
// commands from them.
//
// Every frame is a JSON Envelope, e.g.
//
//	{"type":"joystick","msg":{"front":50,"side":0}}
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/whill.go/pkg/bridge"
	"github.com/robotalks/whill.go/pkg/msgs"
	"github.com/robotalks/whill.go/pkg/whill"
)

// Path serves the WebSocket endpoint.
const Path = "/ws"

// Envelope carries a named message.
type Envelope struct {
	Type string          `json:"type"`
	Msg  json.RawMessage `json:"msg,omitempty"`
}

// EnvelopeOf wraps a message.
func EnvelopeOf(msg msgs.Message) (*Envelope, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return &Envelope{Type: msg.MessageName(), Msg: raw}, nil
}

// Open unwraps the message.
func (e *Envelope) Open() (msgs.Message, error) {
	msg, err := msgs.New(e.Type)
	if err != nil {
		return nil, err
	}
	if len(e.Msg) > 0 {
		if err := json.Unmarshal(e.Msg, msg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", e.Type, err)
		}
	}
	return msg, nil
}

const clientQueueSize = 16

type client struct {
	conn   *websocket.Conn
	sendCh chan *Envelope
}

// Server is the WebSocket endpoint.
type Server struct {
	Addr      string
	Commander bridge.Commander

	clients     map[*client]struct{}
	clientsLock sync.Mutex
}

// Name implements framework.Runnable.
func (s *Server) Name() string {
	return "websocket"
}

// Handler returns the HTTP handler serving Path.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(Path, websocket.Handler(s.serveConn))
	return mux
}

// Run implements framework.Runnable.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	glog.Infof("WebSocket listening on %s%s", s.Addr, Path)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// HandleEvent implements whill.Handler.
func (s *Server) HandleEvent(dev *whill.Device, kind whill.EventKind) {
	var msg msgs.Message
	switch kind {
	case whill.EventDataSet1:
		msg = msgs.StatusFrom(dev.Telemetry())
	case whill.EventDataSet0:
		msg = msgs.SpeedProfilesFrom(dev.Telemetry())
	case whill.EventPowerOn:
		msg = &msgs.PowerOn{}
	default:
		return
	}
	env, err := EnvelopeOf(msg)
	if err != nil {
		glog.Errorf("encode %s: %v", msg.MessageName(), err)
		return
	}
	s.broadcast(env)
}

func (s *Server) broadcast(env *Envelope) {
	s.clientsLock.Lock()
	defer s.clientsLock.Unlock()
	for c := range s.clients {
		select {
		case c.sendCh <- env:
		default:
			glog.V(1).Infof("WebSocket %s slow, %s dropped", c.conn.Request().RemoteAddr, env.Type)
		}
	}
}

func (s *Server) add(c *client) {
	s.clientsLock.Lock()
	if s.clients == nil {
		s.clients = make(map[*client]struct{})
	}
	s.clients[c] = struct{}{}
	s.clientsLock.Unlock()
}

func (s *Server) remove(c *client) {
	s.clientsLock.Lock()
	delete(s.clients, c)
	s.clientsLock.Unlock()
}

func (s *Server) serveConn(conn *websocket.Conn) {
	c := &client{conn: conn, sendCh: make(chan *Envelope, clientQueueSize)}
	s.add(c)
	doneCh, writerCh := make(chan struct{}), make(chan struct{})
	defer func() {
		s.remove(c)
		close(doneCh)
	}()
	go func() {
		defer close(writerCh)
		for {
			select {
			case env := <-c.sendCh:
				if err := websocket.JSON.Send(conn, env); err != nil {
					conn.Close()
					return
				}
			case <-doneCh:
				return
			}
		}
	}()

	remote := conn.Request().RemoteAddr
	glog.V(1).Infof("WebSocket %s connected", remote)
	for {
		var env Envelope
		if err := websocket.JSON.Receive(conn, &env); err != nil {
			glog.V(1).Infof("WebSocket %s closed: %v", remote, err)
			return
		}
		select {
		case c.sendCh <- s.execute(&env):
		case <-writerCh:
			return
		}
	}
}

func (s *Server) execute(env *Envelope) *Envelope {
	msg, err := env.Open()
	var res *msgs.Result
	if err != nil {
		res = &msgs.Result{Command: env.Type, Error: err.Error()}
	} else {
		res = bridge.ResultOf(msg, bridge.Execute(s.Commander, msg))
	}
	if !res.Ok {
		glog.Warningf("WebSocket command %s: %s", env.Type, res.Error)
	}
	reply, _ := EnvelopeOf(res)
	return reply
}
