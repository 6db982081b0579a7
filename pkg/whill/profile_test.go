package whill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/whill.go/pkg/whill/data"
)

func TestFetchSpeedProfile(t *testing.T) {
	d, tr := newTestDevice()
	tr.feed(
		frameOf(0, 1, 9, 9, 9, 9, 9, 9, 9, 9, 9),
		frameOf(0, 3, 60, 16, 64, 20, 16, 56, 35, 16, 56),
	)
	p, err := d.FetchSpeedProfile(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, [9]uint8{60, 16, 64, 20, 16, 56, 35, 16, 56}, p.Fields())
	require.Equal(t, [][]byte{
		frameOf(0, 0, 0, 100, 3),
		frameOf(1),
	}, tr.written())
}

func TestFetchSpeedProfileTimeout(t *testing.T) {
	d, tr := newTestDevice()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := d.FetchSpeedProfile(ctx, 2)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Len(t, tr.written(), 2)

	_, err = d.FetchSpeedProfile(context.Background(), 6)
	require.ErrorIs(t, err, data.ErrSpeedMode)
	require.Len(t, tr.written(), 2)
}

func TestFetchSpeedProfileStopFailure(t *testing.T) {
	d, tr := newTestDevice()
	tr.feed(frameOf(0, 2, 60, 16, 64, 20, 16, 56, 35, 16, 56))
	tr.writeErr = errors.New("unplugged")
	tr.failFrom = 1
	p, err := d.FetchSpeedProfile(context.Background(), 2)
	require.ErrorIs(t, err, tr.writeErr)
	require.Equal(t, uint8(60), p.Fields()[0])
	require.Equal(t, [][]byte{frameOf(0, 0, 0, 100, 2)}, tr.written())
}
