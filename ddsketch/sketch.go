// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2018 Datadog, Inc.

package ddsketch

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// DefaultRelativeAccuracy is the accuracy used by NewDefaultSketch.
const DefaultRelativeAccuracy = 0.001

var (
	// ErrAccuracyOutOfRange is returned by NewSketch when the relative
	// accuracy is not in (0, 1].
	ErrAccuracyOutOfRange = errors.New("The relative accuracy must be between 0 (exclusive) and 1 (inclusive).")
	// ErrQuantileOutOfRange is returned by Quantile when the argument is
	// not in [0, 1].
	ErrQuantileOutOfRange = errors.New("The quantile must be between 0 and 1.")
	// ErrEmptySketch is returned by Quantile when no value has been added.
	ErrEmptySketch = errors.New("No value has been added to the sketch.")
	// ErrIncompatibleAccuracies is returned by Merge when the two sketches
	// were built with different relative accuracies.
	ErrIncompatibleAccuracies = errors.New("Cannot merge sketches with different relative accuracies.")
)

// Sketch is a quantile summary of a stream of values with a relative-error
// guarantee: for any queried quantile, the estimate is within a factor
// (1 ± relativeAccuracy) of the true value. Values are mapped into
// logarithmically sized bins, so the memory footprint depends on the range
// of magnitudes seen, not on the number of values.
//
// A sketch is not safe for concurrent use; callers that share an instance
// across goroutines must synchronize externally. The intended usage in a
// distributed setting is one sketch per collector, combined afterwards with
// Merge.
type Sketch struct {
	relativeAccuracy float64
	gamma            float64
	gammaLn          float64

	positiveBins *store
	negativeBins *store
	zeroCount    uint64

	count uint64
	sum   float64
	min   float64
	max   float64
}

// NewSketch allocates a sketch with the given relative accuracy, which must
// be in (0, 1].
func NewSketch(relativeAccuracy float64) (*Sketch, error) {
	if relativeAccuracy <= 0 || relativeAccuracy > 1 {
		return nil, ErrAccuracyOutOfRange
	}
	gamma := (1 + relativeAccuracy) / (1 - relativeAccuracy)
	return &Sketch{
		relativeAccuracy: relativeAccuracy,
		gamma:            gamma,
		gammaLn:          math.Log(gamma),
		positiveBins:     newStore(),
		negativeBins:     newStore(),
		min:              math.Inf(1),
		max:              math.Inf(-1),
	}, nil
}

// NewDefaultSketch allocates a sketch with DefaultRelativeAccuracy.
func NewDefaultSketch() *Sketch {
	s, _ := NewSketch(DefaultRelativeAccuracy)
	return s
}

// Add a new value to the sketch.
func (s *Sketch) Add(v float64) {
	if v >= 1 {
		s.positiveBins.add(s.key(v))
	} else if v <= -1 {
		s.negativeBins.add(s.key(-v))
	} else {
		// The logarithmic mapping is unstable near zero; everything in
		// (-1, 1) collapses into a single zero bin.
		s.zeroCount++
	}

	s.count++
	s.sum += v
	if v < s.min {
		s.min = v
	}
	if s.max < v {
		s.max = v
	}
}

// AddValues adds each value in order. The final state is the same as that of
// repeated Add calls.
func (s *Sketch) AddValues(values ...float64) {
	for _, v := range values {
		s.Add(v)
	}
}

// key maps a magnitude v >= 1 into the unique bin i such that
// gamma^(i-1) < v <= gamma^i.
func (s *Sketch) key(v float64) int32 {
	return int32(math.Ceil(math.Log(v) / s.gammaLn))
}

// binValue maps a bin index back to a representative value, chosen so that
// the relative error against any value in the bin stays within the accuracy
// bound.
func (s *Sketch) binValue(key int32) float64 {
	return 2 * math.Pow(s.gamma, float64(key)) / (s.gamma + 1)
}

// Quantile returns the estimate of the value at quantile q.
func (s *Sketch) Quantile(q float64) (float64, error) {
	if q < 0 || q > 1 {
		return math.NaN(), ErrQuantileOutOfRange
	}
	if s.count == 0 {
		return math.NaN(), ErrEmptySketch
	}

	// The extremes are tracked exactly.
	if q == 0 {
		return s.min, nil
	} else if q == 1 {
		return s.max, nil
	}

	rank := q * float64(s.count-1)
	cumulative := float64(0)

	// Negative bins hold magnitudes, so the most negative values live in
	// the highest-index bins; walk them from the back.
	negativeKeys := s.negativeBins.orderedKeys()
	for i := len(negativeKeys) - 1; i >= 0; i-- {
		key := negativeKeys[i]
		cumulative += float64(s.negativeBins.bins[key])
		if cumulative > rank {
			return -s.binValue(key), nil
		}
	}

	cumulative += float64(s.zeroCount)
	if cumulative > rank {
		return 0, nil
	}

	for _, key := range s.positiveBins.orderedKeys() {
		cumulative += float64(s.positiveBins.bins[key])
		if cumulative > rank {
			return s.binValue(key), nil
		}
	}

	// Only reachable through floating-point rounding on the last bin
	// boundary.
	return s.max, nil
}

// Merge another sketch with the same relative accuracy in place. Merging is
// exact: the result is identical to a single sketch fed both streams. The
// other sketch is only read, never modified or retained.
func (s *Sketch) Merge(o *Sketch) error {
	if o.relativeAccuracy != s.relativeAccuracy {
		return ErrIncompatibleAccuracies
	}

	s.positiveBins.merge(o.positiveBins)
	s.negativeBins.merge(o.negativeBins)
	s.zeroCount += o.zeroCount

	s.count += o.count
	s.sum += o.sum
	if o.min < s.min {
		s.min = o.min
	}
	if s.max < o.max {
		s.max = o.max
	}
	return nil
}

// RelativeAccuracy returns the accuracy the sketch was built with.
func (s *Sketch) RelativeAccuracy() float64 {
	return s.relativeAccuracy
}

// Count returns the number of values added to the sketch.
func (s *Sketch) Count() uint64 {
	return s.count
}

// Min returns the exact minimum of the added values, or +Inf when the sketch
// is empty.
func (s *Sketch) Min() float64 {
	return s.min
}

// Max returns the exact maximum of the added values, or -Inf when the sketch
// is empty.
func (s *Sketch) Max() float64 {
	return s.max
}

// Sum returns the sum of the added values.
func (s *Sketch) Sum() float64 {
	return s.sum
}

// Avg returns the average of the added values.
func (s *Sketch) Avg() float64 {
	return s.sum / float64(s.count)
}

// MakeCopy returns a deep copy of the sketch that can be mutated
// independently.
func (s *Sketch) MakeCopy() *Sketch {
	return &Sketch{
		relativeAccuracy: s.relativeAccuracy,
		gamma:            s.gamma,
		gammaLn:          s.gammaLn,
		positiveBins:     s.positiveBins.makeCopy(),
		negativeBins:     s.negativeBins.makeCopy(),
		zeroCount:        s.zeroCount,
		count:            s.count,
		sum:              s.sum,
		min:              s.min,
		max:              s.max,
	}
}

func (s *Sketch) String() string {
	var buffer bytes.Buffer
	buffer.WriteString(fmt.Sprintf("gamma: %g ", s.gamma))
	buffer.WriteString(fmt.Sprintf("count: %d ", s.count))
	buffer.WriteString(fmt.Sprintf("zeroCount: %d ", s.zeroCount))
	buffer.WriteString(fmt.Sprintf("sum: %g ", s.sum))
	buffer.WriteString(fmt.Sprintf("min: %g ", s.min))
	buffer.WriteString(fmt.Sprintf("max: %g ", s.max))
	buffer.WriteString(fmt.Sprintf("positiveBins: %d negativeBins: %d\n", len(s.positiveBins.bins), len(s.negativeBins.bins)))
	return buffer.String()
}
