// Package msgs defines the messages exchanged with remote clients.
//
// Messages are protobuf encoded on MQTT and JSON encoded on WebSocket.
// The message name identifies the type in both cases, as the last topic
// element or the "type" field of the envelope.
package msgs
