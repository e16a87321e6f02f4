package tracker

import (
	"errors"
	"fmt"
	"github.com/swdee/go-pawss/geom"
	"gonum.org/v1/gonum/mat"
)

// CenterFilter is a constant velocity Kalman filter over the center of the
// tracked box.  The state is (cx, cy, vx, vy) and the measurement (cx, cy),
// noise is scaled by the box height so the filter behaves the same at any
// object size
type CenterFilter struct {
	stdWeightPosition float64
	stdWeightVelocity float64
	motionMat         *mat.Dense
	updateMat         *mat.Dense
	// mean is the state estimate
	mean *mat.VecDense
	// covariance is the state covariance
	covariance *mat.Dense
	// height is the box height the noise is scaled by
	height float64
}

// NewCenterFilter returns a new CenterFilter with the position and velocity
// noise given as a fraction of the box height
func NewCenterFilter(stdWeightPosition, stdWeightVelocity float64) *CenterFilter {

	ndim := 2
	dt := 1.0

	// identity with dt coupling position to velocity
	motionMat := mat.NewDense(4, 4, nil)

	for i := 0; i < 4; i++ {
		motionMat.Set(i, i, 1)
	}

	for i := 0; i < ndim; i++ {
		motionMat.Set(i, ndim+i, dt)
	}

	// measurement picks the position components
	updateMat := mat.NewDense(2, 4, nil)

	for i := 0; i < ndim; i++ {
		updateMat.Set(i, i, 1)
	}

	return &CenterFilter{
		stdWeightPosition: stdWeightPosition,
		stdWeightVelocity: stdWeightVelocity,
		motionMat:         motionMat,
		updateMat:         updateMat,
		mean:              mat.NewVecDense(4, nil),
		covariance:        mat.NewDense(4, 4, nil),
	}
}

// Initiate starts the filter at the center of rect with zero velocity
func (kf *CenterFilter) Initiate(rect geom.IntRect) {

	cx, cy := rect.Float().Center()
	kf.height = max(float64(rect.H), 1)

	kf.mean.SetVec(0, cx)
	kf.mean.SetVec(1, cy)
	kf.mean.SetVec(2, 0)
	kf.mean.SetVec(3, 0)

	std := []float64{
		2 * kf.stdWeightPosition * kf.height,  // x position
		2 * kf.stdWeightPosition * kf.height,  // y position
		10 * kf.stdWeightVelocity * kf.height, // x velocity
		10 * kf.stdWeightVelocity * kf.height, // y velocity
	}

	kf.covariance.Zero()

	for i, v := range std {
		kf.covariance.Set(i, i, v*v)
	}
}

// Center returns the current center estimate
func (kf *CenterFilter) Center() (float64, float64) {
	return kf.mean.AtVec(0), kf.mean.AtVec(1)
}

// Velocity returns the current velocity estimate in pixels per frame
func (kf *CenterFilter) Velocity() (float64, float64) {
	return kf.mean.AtVec(2), kf.mean.AtVec(3)
}

// Predict advances the state by one frame and returns the predicted center
func (kf *CenterFilter) Predict() (float64, float64) {

	std := []float64{
		kf.stdWeightPosition * kf.height,
		kf.stdWeightPosition * kf.height,
		kf.stdWeightVelocity * kf.height,
		kf.stdWeightVelocity * kf.height,
	}

	motionCov := mat.NewDense(4, 4, nil)

	for i, v := range std {
		motionCov.Set(i, i, v*v)
	}

	mean := mat.NewVecDense(4, nil)
	mean.MulVec(kf.motionMat, kf.mean)
	kf.mean = mean

	var cov mat.Dense
	cov.Mul(kf.motionMat, kf.covariance)
	cov.Mul(&cov, kf.motionMat.T())
	cov.Add(&cov, motionCov)
	kf.covariance = &cov

	return kf.Center()
}

// Update corrects the state with the center of the measured rect
func (kf *CenterFilter) Update(rect geom.IntRect) error {

	projectedMean, projectedCov := kf.project()

	chol := mat.Cholesky{}

	if ok := chol.Factorize(projectedCov); !ok {
		return errors.New("failed to factorize projected covariance")
	}

	// gain is solved from S * K^T = (P * H^T)^T
	B := mat.NewDense(4, 2, nil)
	B.Mul(kf.covariance, kf.updateMat.T())

	var kalmanGain mat.Dense
	err := chol.SolveTo(&kalmanGain, B.T())

	if err != nil {
		return fmt.Errorf("failed to compute kalman gain: %w", err)
	}

	cx, cy := rect.Float().Center()

	innovation := mat.NewVecDense(2, []float64{
		cx - projectedMean.AtVec(0),
		cy - projectedMean.AtVec(1),
	})

	correction := mat.NewVecDense(4, nil)
	correction.MulVec(kalmanGain.T(), innovation)
	kf.mean.AddVec(kf.mean, correction)

	temp := mat.NewDense(4, 2, nil)
	temp.Mul(kalmanGain.T(), projectedCov)

	temp2 := mat.NewDense(4, 4, nil)
	temp2.Mul(temp, &kalmanGain)

	newCov := mat.NewDense(4, 4, nil)
	newCov.Sub(kf.covariance, temp2)
	kf.covariance = newCov

	return nil
}

// project returns the state mean and covariance in measurement space
func (kf *CenterFilter) project() (*mat.VecDense, *mat.SymDense) {

	std := kf.stdWeightPosition * kf.height

	projectedMean := mat.NewVecDense(2, nil)
	projectedMean.MulVec(kf.updateMat, kf.mean)

	temp := mat.NewDense(2, 4, nil)
	temp.Mul(kf.updateMat, kf.covariance)

	temp2 := mat.NewDense(2, 2, nil)
	temp2.Mul(temp, kf.updateMat.T())

	projectedCov := mat.NewSymDense(2, nil)

	for i := 0; i < 2; i++ {
		for j := i; j < 2; j++ {
			projectedCov.SetSym(i, j, temp2.At(i, j))
		}

		projectedCov.SetSym(i, i, projectedCov.At(i, i)+std*std)
	}

	return projectedMean, projectedCov
}
