// Package whill drives a WHILL Model CR over its serial protocol.
//
// A Device frames commands onto a byte stream and decodes the telemetry
// datasets coming back. Polling is explicit: nothing is read unless Poll
// is called, and event handlers run inside Poll. Motion commands can be
// held, i.e. repeated in the background until a timeout or Unhold.
package whill
