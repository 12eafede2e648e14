// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2018 Datadog, Inc.

package ddsketch

import (
	"testing"

	"github.com/alexandre-lecoq/DDSketch/dataset"
)

func BenchmarkAdd(b *testing.B) {
	s := NewDefaultSketch()
	generator := dataset.NewNormal(35, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Add(generator.Generate())
	}
}

func BenchmarkQuantile(b *testing.B) {
	s := NewDefaultSketch()
	generator := dataset.NewNormal(35, 1)
	for i := 0; i < 10000; i++ {
		s.Add(generator.Generate())
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Quantile(0.99); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMerge(b *testing.B) {
	generator := dataset.NewNormal(35, 1)
	o := NewDefaultSketch()
	for i := 0; i < 10000; i++ {
		o.Add(generator.Generate())
	}
	s := NewDefaultSketch()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Merge(o); err != nil {
			b.Fatal(err)
		}
	}
}
