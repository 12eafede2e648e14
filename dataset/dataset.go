// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2018 Datadog, Inc.

package dataset

import (
	"math"
	"sort"
)

// Dataset is an exact reference implementation that retains every value, used
// to check the approximation error of a sketch.
type Dataset struct {
	Values []float64
	sorted bool
}

func NewDataset() *Dataset { return &Dataset{} }

func (d *Dataset) Add(v float64) {
	d.Values = append(d.Values, v)
	d.sorted = false
}

func (d *Dataset) Count() uint64 {
	return uint64(len(d.Values))
}

// Quantile returns the lower quantile of the dataset
func (d *Dataset) Quantile(q float64) float64 {
	return d.LowerQuantile(q)
}

func (d *Dataset) LowerQuantile(q float64) float64 {
	if q < 0 || q > 1 || len(d.Values) == 0 {
		return math.NaN()
	}

	d.sort()
	rank := q * float64(len(d.Values)-1)
	return d.Values[int(math.Floor(rank))]
}

func (d *Dataset) UpperQuantile(q float64) float64 {
	if q < 0 || q > 1 || len(d.Values) == 0 {
		return math.NaN()
	}

	d.sort()
	rank := q * float64(len(d.Values)-1)
	return d.Values[int(math.Ceil(rank))]
}

func (d *Dataset) Min() float64 {
	d.sort()
	return d.Values[0]
}

func (d *Dataset) Max() float64 {
	d.sort()
	return d.Values[len(d.Values)-1]
}

func (d *Dataset) Sum() float64 {
	var sum float64
	for _, v := range d.Values {
		sum += v
	}
	return sum
}

func (d *Dataset) Avg() float64 {
	return d.Sum() / float64(len(d.Values))
}

func (d *Dataset) Merge(o *Dataset) {
	for _, v := range o.Values {
		d.Add(v)
	}
}

func (d *Dataset) sort() {
	if d.sorted {
		return
	}
	sort.Float64s(d.Values)
	d.sorted = true
}
