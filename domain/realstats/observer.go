package realstats

// Observer receives a diagnostic notification after an aggregate
// completes: the operation name, the series length, and the result.
// Observers are fire-and-forget: they must never block, a panic inside
// one is swallowed so it can never fail a computation, and they must be
// safe to call from multiple goroutines.
type Observer func(op string, n int, result float64)

// Instrumented wraps the package-level aggregates with an optional
// Observer. The package functions themselves stay pure; callers that
// want diagnostics (the dashboard binds this to the app logger) go
// through an Instrumented instead.
type Instrumented struct {
	observer Observer
}

// NewInstrumented returns an instrumented view of the aggregates.
// A nil observer is allowed and makes every wrapper a plain call.
func NewInstrumented(obs Observer) *Instrumented {
	return &Instrumented{observer: obs}
}

func (in *Instrumented) notify(op string, n int, result float64) {
	if in.observer == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	in.observer(op, n, result)
}

func (in *Instrumented) Mean(series []float64) float64 {
	r := Mean(series)
	in.notify("mean", len(series), r)
	return r
}

func (in *Instrumented) Supremum(series []float64) float64 {
	r := Supremum(series)
	in.notify("supremum", len(series), r)
	return r
}

func (in *Instrumented) Infimum(series []float64) float64 {
	r := Infimum(series)
	in.notify("infimum", len(series), r)
	return r
}

func (in *Instrumented) Variance(series []float64) float64 {
	r := Variance(series)
	in.notify("variance", len(series), r)
	return r
}

func (in *Instrumented) StdDev(series []float64) float64 {
	r := StdDev(series)
	in.notify("stddev", len(series), r)
	return r
}

func (in *Instrumented) ZScore(x, mean, stdDev float64) float64 {
	r := ZScore(x, mean, stdDev)
	in.notify("zscore", 1, r)
	return r
}

func (in *Instrumented) Integrate(series []float64, interval float64) float64 {
	r := Integrate(series, interval)
	in.notify("integrate", len(series), r)
	return r
}

func (in *Instrumented) MovingAverage(previous, observation, alpha float64) float64 {
	r := MovingAverage(previous, observation, alpha)
	in.notify("moving_average", 1, r)
	return r
}
