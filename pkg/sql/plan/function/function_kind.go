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

package function

type Category int32

const (
	SCALAR_FUNCTION    Category = 0 // row at a time
	AGGREGATE_FUNCTION Category = 1 // group aggregate, may also run over a window
	ANALYTIC_FUNCTION  Category = 2 // window only
)

func (c Category) String() string {
	switch c {
	case SCALAR_FUNCTION:
		return "SCALAR"
	case AGGREGATE_FUNCTION:
		return "AGGREGATE"
	case ANALYTIC_FUNCTION:
		return "ANALYTIC"
	}
	return "UNKNOWN"
}

// Stage names one evaluator lifecycle routine.
type Stage int32

const (
	StageEval Stage = iota
	StagePrepare
	StageClose
	StageInit
	StageUpdate
	StageMerge
	StageSerialize
	StageGetValue
	StageFinalize
	StageRemove
)

var stageNames = [...]string{
	StageEval:      "eval",
	StagePrepare:   "prepare",
	StageClose:     "close",
	StageInit:      "init",
	StageUpdate:    "update",
	StageMerge:     "merge",
	StageSerialize: "serialize",
	StageGetValue:  "get_value",
	StageFinalize:  "finalize",
	StageRemove:    "remove",
}

func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// AllStages lists every stage in lifecycle order.
var AllStages = []Stage{
	StageEval, StagePrepare, StageClose, StageInit, StageUpdate,
	StageMerge, StageSerialize, StageGetValue, StageFinalize, StageRemove,
}

// Impl is the category specific part of a signature: one of Scalar,
// Aggregate or Analytic. Hook strings are symbols owned by the execution
// engine and are never interpreted here. An empty string means the stage
// does not apply.
type Impl interface {
	Category() Category
	// Hook returns the symbol bound to stage, or "" when there is none.
	Hook(stage Stage) string
	impl()
}

// Scalar is evaluated once per row.
type Scalar struct {
	Symbol  string
	Prepare string
	Close   string
}

func (Scalar) Category() Category { return SCALAR_FUNCTION }

func (s Scalar) Hook(stage Stage) string {
	switch stage {
	case StageEval:
		return s.Symbol
	case StagePrepare:
		return s.Prepare
	case StageClose:
		return s.Close
	}
	return ""
}

func (Scalar) impl() {}

// Aggregate folds a group of rows into one value.
type Aggregate struct {
	Init      string
	Update    string
	Merge     string
	Serialize string
	GetValue  string
	Finalize  string
	Remove    string

	// IgnoresDistinct means DISTINCT does not change the result, like min.
	IgnoresDistinct bool
	// AnalyticCapable means the aggregate may also be used over a window.
	AnalyticCapable bool
	// ReturnsNonNullOnEmpty means an empty group yields a value, like count.
	ReturnsNonNullOnEmpty bool
}

func (Aggregate) Category() Category { return AGGREGATE_FUNCTION }

func (a Aggregate) Hook(stage Stage) string {
	switch stage {
	case StageInit:
		return a.Init
	case StageUpdate:
		return a.Update
	case StageMerge:
		return a.Merge
	case StageSerialize:
		return a.Serialize
	case StageGetValue:
		return a.GetValue
	case StageFinalize:
		return a.Finalize
	case StageRemove:
		return a.Remove
	}
	return ""
}

func (Aggregate) impl() {}

// Analytic only runs over a window.
type Analytic struct {
	Init     string
	Update   string
	Remove   string
	GetValue string
	Finalize string
}

func (Analytic) Category() Category { return ANALYTIC_FUNCTION }

func (a Analytic) Hook(stage Stage) string {
	switch stage {
	case StageInit:
		return a.Init
	case StageUpdate:
		return a.Update
	case StageRemove:
		return a.Remove
	case StageGetValue:
		return a.GetValue
	case StageFinalize:
		return a.Finalize
	}
	return ""
}

func (Analytic) impl() {}
