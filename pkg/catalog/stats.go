// Copyright 2021 - 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/RoaringBitmap/roaring/roaring64"
	hll "github.com/axiomhq/hyperloglog"

	"github.com/matrixorigin/fncatalog/pkg/sql/plan/function"
)

// stats counts resolutions. The counters are lock free; the sketches are
// guarded by mu.
type stats struct {
	hits   [function.NumCompareModes]atomic.Int64
	misses atomic.Int64

	mu sync.Mutex
	// calls estimates the distinct call shapes seen.
	calls *hll.Sketch
	// resolved holds the overload ids ever returned.
	resolved *roaring64.Bitmap
}

func newStats() *stats {
	return &stats{
		calls:    hll.New(),
		resolved: roaring64.NewBitmap(),
	}
}

func (s *stats) record(d function.Desc, e *function.Entry, mode function.CompareMode) {
	if e == nil {
		s.misses.Add(1)
	} else {
		s.hits[mode].Add(1)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls.Insert([]byte(d.String()))
	if e != nil && e.OverloadID() >= 0 {
		s.resolved.Add(uint64(e.OverloadID()))
	}
}

func (s *stats) snapshot() StatsSnapshot {
	var snap StatsSnapshot
	for i := range s.hits {
		snap.Hits[i] = s.hits[i].Load()
	}
	snap.Misses = s.misses.Load()

	s.mu.Lock()
	defer s.mu.Unlock()
	snap.DistinctCalls = s.calls.Estimate()
	snap.DistinctOverloads = s.resolved.GetCardinality()
	return snap
}

// StatsSnapshot is a point in time copy of the resolution statistics.
type StatsSnapshot struct {
	// Hits is indexed by the compare mode that produced the match.
	Hits   [function.NumCompareModes]int64
	Misses int64
	// DistinctCalls is an estimate.
	DistinctCalls     uint64
	DistinctOverloads uint64
	Functions         int
}

// Resolved is the number of resolutions that found an overload.
func (s StatsSnapshot) Resolved() int64 {
	var n int64
	for _, h := range s.Hits {
		n += h
	}
	return n
}

func (s StatsSnapshot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "functions: %d\n", s.Functions)
	for i, mode := range function.AllCompareModes {
		fmt.Fprintf(&sb, "%s hits: %d\n", mode, s.Hits[i])
	}
	fmt.Fprintf(&sb, "misses: %d\n", s.Misses)
	fmt.Fprintf(&sb, "distinct calls: ~%d\n", s.DistinctCalls)
	fmt.Fprintf(&sb, "distinct overloads: %d\n", s.DistinctOverloads)
	return sb.String()
}
