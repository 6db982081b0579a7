package env

import (
	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// MachineID returns an ID derived from the host, hashed with the app name
// so the raw machine ID isn't exposed on the bus. Empty if unavailable.
func MachineID() string {
	id, err := machineid.ProtectedID("whill")
	if err != nil {
		glog.Warningf("machine ID unavailable: %v", err)
		return ""
	}
	return id[:12]
}
