package timeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMeanStd_RecoversApproximateMean(t *testing.T) {
	d := FromMeanStd(10, 2)
	assert.InDelta(t, 10.0, d.Mean(), 1e-6)
}

func TestFromMeanStd_InvalidInputsReturnZeroValue(t *testing.T) {
	assert.Equal(t, LogNormal{}, FromMeanStd(0, 1))
	assert.Equal(t, LogNormal{}, FromMeanStd(5, -1))
}

func TestSample_UsesSuppliedGenerator(t *testing.T) {
	d := FromMeanStd(10, 2)
	v := d.Sample(func() float64 { return 0 })
	assert.InDelta(t, math.Exp(d.Mu), v, 1e-9)
}

func TestEstimateDurationS_ZeroStepsReturnsZero(t *testing.T) {
	assert.Equal(t, 0.0, EstimateDurationS(0, 1.0, 0.15, func() float64 { return 1 }))
}

func TestEstimateDurationS_ScalesWithStepCountAtZeroVariance(t *testing.T) {
	v := EstimateDurationS(10, 1.0, 0, func() float64 { return 0 })
	assert.InDelta(t, 10.0, v, 1e-9)
}
