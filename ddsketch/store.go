// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2018 Datadog, Inc.

package ddsketch

import (
	"sort"
)

// store is a sparse collection of logarithmic bins keyed by bin index. Only
// indexes that received at least one value are present, and every stored
// count is strictly positive.
type store struct {
	bins map[int32]uint64
}

func newStore() *store {
	return &store{bins: make(map[int32]uint64)}
}

func (s *store) add(key int32) {
	s.bins[key]++
}

func (s *store) merge(o *store) {
	for key, n := range o.bins {
		s.bins[key] += n
	}
}

func (s *store) totalCount() uint64 {
	var n uint64
	for _, c := range s.bins {
		n += c
	}
	return n
}

// orderedKeys returns the bin indexes in ascending order. Map iteration
// order is unspecified and the quantile walk needs the bins sorted.
func (s *store) orderedKeys() []int32 {
	keys := make([]int32, 0, len(s.bins))
	for key := range s.bins {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (s *store) makeCopy() *store {
	bins := make(map[int32]uint64, len(s.bins))
	for key, n := range s.bins {
		bins[key] = n
	}
	return &store{bins: bins}
}
