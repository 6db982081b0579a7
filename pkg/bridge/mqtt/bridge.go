// Package mqtt bridges a device to a MQTT broker.
//
// Topics, relative to the broker URL prefix:
//
//	<id>/status      Status, on every status dataset
//	<id>/profiles    SpeedProfiles, on every profile dataset
//	<id>/power_on    PowerOn
//	<id>/cmd/<name>  commands, named as in msgs.MessageTypes
//	<id>/result      Result of each command
package mqtt

import (
	"context"
	"fmt"
	"strings"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	"github.com/robotalks/whill.go/pkg/bridge"
	"github.com/robotalks/whill.go/pkg/msgs"
	"github.com/robotalks/whill.go/pkg/whill"
)

// Publisher publishes messages.
type Publisher interface {
	Pub(topic string, payload []byte) paho.Token
}

// Bridge publishes device events and executes commands from the broker.
type Bridge struct {
	ID        string
	Publisher Publisher
	Commander bridge.Commander

	queue *Queue
}

// New creates a Bridge connected to brokerURL.
func New(brokerURL, id string, dev bridge.Commander) (*Bridge, error) {
	if id == "" {
		return nil, fmt.Errorf("device ID required")
	}
	q, err := NewQueueFromURL(brokerURL)
	if err != nil {
		return nil, fmt.Errorf("MQTT URL %q: %w", brokerURL, err)
	}
	return &Bridge{ID: id, Publisher: q, Commander: dev, queue: q}, nil
}

// Name implements framework.Runnable.
func (b *Bridge) Name() string {
	return "mqtt"
}

// Run implements framework.Runnable.
func (b *Bridge) Run(ctx context.Context) error {
	b.queue.Sub(b.ID+"/cmd/+", b.HandleCommand)
	token := b.queue.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("MQTT connect: %w", err)
	}
	<-ctx.Done()
	b.queue.Close()
	return nil
}

// HandleEvent implements whill.Handler.
func (b *Bridge) HandleEvent(dev *whill.Device, kind whill.EventKind) {
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
	b.publish(msg.MessageName(), msg)
}

// HandleCommand decodes and executes a command received on <id>/cmd/<name>.
func (b *Bridge) HandleCommand(topic string, payload []byte) {
	name := topic[strings.LastIndex(topic, "/")+1:]
	msg, err := msgs.Decode(name, payload)
	if err != nil {
		glog.Warningf("MQTT command %q: %v", topic, err)
		b.publish(msgs.ResultName, &msgs.Result{Command: name, Error: err.Error()})
		return
	}
	err = bridge.Execute(b.Commander, msg)
	if err != nil {
		glog.Warningf("MQTT command %s: %v", name, err)
	}
	b.publish(msgs.ResultName, bridge.ResultOf(msg, err))
}

func (b *Bridge) publish(name string, msg msgs.Message) {
	data, err := msgs.Encode(msg)
	if err != nil {
		glog.Errorf("encode %s: %v", name, err)
		return
	}
	b.Publisher.Pub(b.ID+"/"+name, data)
}
