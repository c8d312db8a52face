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
	"context"

	"github.com/matrixorigin/fncatalog/pkg/sql/plan/function"
)

//go:generate mockgen -source=observer.go -destination=mock_catalog/mock_observer.go -package=mock_catalog

// Observer is told about user-defined functions after they are created or
// dropped. Callbacks run on the DDL goroutine, outside of any registry
// lock, and must not block.
type Observer interface {
	OnFunctionAdded(ctx context.Context, e *function.Entry)
	OnFunctionDropped(ctx context.Context, e *function.Entry)
}
