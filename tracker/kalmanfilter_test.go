package tracker

import (
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-pawss/geom"
	"testing"
)

func TestCenterFilterInitiate(t *testing.T) {

	kf := NewCenterFilter(1.0/20, 1.0/160)
	kf.Initiate(geom.NewIntRect(40, 40, 20, 20))

	cx, cy := kf.Center()
	require.Equal(t, 50.0, cx)
	require.Equal(t, 50.0, cy)

	// position variance (2 * 1/20 * 20)^2, velocity (10 * 1/160 * 20)^2
	require.InDelta(t, 4.0, kf.covariance.At(0, 0), 1e-12)
	require.InDelta(t, 1.5625, kf.covariance.At(2, 2), 1e-12)
	require.Zero(t, kf.covariance.At(0, 2))

	px, py := kf.Predict()
	require.Equal(t, 50.0, px)
	require.Equal(t, 50.0, py)
}

func TestCenterFilterUpdate(t *testing.T) {

	kf := NewCenterFilter(1.0/20, 1.0/160)
	kf.Initiate(geom.NewIntRect(40, 40, 20, 20))
	kf.Predict()

	require.NoError(t, kf.Update(geom.NewIntRect(50, 40, 20, 20)))

	cx, cy := kf.Center()
	require.Greater(t, cx, 50.0)
	require.Less(t, cx, 60.0)
	require.InDelta(t, 50.0, cy, 1e-9)

	vx, _ := kf.Velocity()
	require.Greater(t, vx, 0.0)
}

func TestCenterFilterConstantVelocity(t *testing.T) {

	kf := NewCenterFilter(1.0/20, 1.0/160)
	kf.Initiate(geom.NewIntRect(40, 40, 20, 20))

	for i := 1; i <= 40; i++ {
		kf.Predict()
		require.NoError(t, kf.Update(geom.NewIntRect(40+5*i, 40-2*i, 20, 20)))
	}

	px, py := kf.Predict()
	require.InDelta(t, 50.0+5*41, px, 0.5)
	require.InDelta(t, 50.0-2*41, py, 0.5)

	vx, vy := kf.Velocity()
	require.InDelta(t, 5.0, vx, 0.1)
	require.InDelta(t, -2.0, vy, 0.1)
}
