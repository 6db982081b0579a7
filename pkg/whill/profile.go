package whill

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"github.com/robotalks/whill.go/pkg/whill/data"
)

// ProfileStreamInterval is the interval used to request a speed profile.
const ProfileStreamInterval = 100

// FetchSpeedProfile asks the device for the profile of speedMode and polls
// until it's reported, then stops the stream. It polls by itself, so no
// Poller should run on the same device meanwhile.
func (d *Device) FetchSpeedProfile(ctx context.Context, speedMode int) (p data.SpeedProfile, err error) {
	seq := d.Telemetry().SeqDataSet0
	if _, err = d.RequestSpeedProfile(speedMode, ProfileStreamInterval); err != nil {
		return
	}
	defer func() {
		if _, stopErr := d.StopStream(); stopErr != nil {
			glog.Warningf("stop profile stream: %v", stopErr)
			if err == nil {
				err = fmt.Errorf("stop stream: %w", stopErr)
			}
		}
	}()
	for {
		if err = ctx.Err(); err != nil {
			return
		}
		if _, err = d.Poll(); err != nil {
			return
		}
		if t := d.Telemetry(); t.SeqDataSet0 != seq && t.LatestSpeedMode == speedMode {
			return t.SpeedProfiles[speedMode], nil
		}
	}
}
