package timeline

import "math"

// LogNormal is a log-normal distribution: if X ~ LogNormal(Mu, Sigma) then
// ln(X) ~ Normal(Mu, Sigma). Adapted from the teacher's LogNormalDist
// (internal/algo/lognormal.go in the reference pack), which modelled
// stochastic task-execution duration; used by EstimateDurationS to give
// internal/replan's EstimatedDurationS a grounded, reproducible
// distribution rather than a raw math/rand call.
type LogNormal struct {
	Mu    float64
	Sigma float64
}

// FromMeanStd derives a LogNormal from the mean and standard deviation of
// X itself (not of ln(X)).
func FromMeanStd(mean, std float64) LogNormal {
	if mean <= 0 || std < 0 {
		return LogNormal{}
	}
	variance := std * std
	sigma2 := math.Log(1 + variance/(mean*mean))
	sigma := math.Sqrt(sigma2)
	mu := math.Log(mean) - sigma2/2
	return LogNormal{Mu: mu, Sigma: sigma}
}

// Mean returns E[X].
func (d LogNormal) Mean() float64 {
	return math.Exp(d.Mu + d.Sigma*d.Sigma/2)
}

// Sample draws one value using the supplied standard-normal generator
// (e.g. rand.Rand.NormFloat64).
func (d LogNormal) Sample(standardNormal func() float64) float64 {
	return math.Exp(d.Mu + d.Sigma*standardNormal())
}
