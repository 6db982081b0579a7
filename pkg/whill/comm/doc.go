// Package comm provides the WHILL serial protocol framing.
package comm

// The protocol is spoken between the Model CR firmware and a host over a
// peer-to-peer serial channel (38400 baud, 8N1).
//
// Every frame starts with a fixed sign byte, followed by a length byte
// and the payload. The last payload byte is a checksum chosen so that the
// XOR of every byte in the frame is zero.
//
//	[0xAF][len][payload ...][checksum]
//
// There is no acknowledgment or retransmission. A written frame only means
// the bytes left the local buffer.
//
// Producer: host (commands), firmware (datasets)
// Consumer: firmware (commands), host (datasets)
