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
	"sync"

	"github.com/matrixorigin/fncatalog/pkg/common/moerr"
	"github.com/matrixorigin/fncatalog/pkg/sql/plan/function"
)

var resolveOne = func(ctx context.Context, c *Catalog, d function.Desc, ceiling function.CompareMode) *function.Entry {
	return c.Resolve(ctx, d, ceiling)
}

// ResolveBatch resolves descs on the worker pool. The i-th result belongs
// to descs[i] and is nil when nothing matched. The whole batch fails when
// ctx is done before every call is resolved.
func (c *Catalog) ResolveBatch(ctx context.Context, descs []function.Desc, ceiling function.CompareMode) ([]*function.Entry, error) {
	if c.closed.Load() {
		return nil, moerr.NewInvalidState(ctx, "function catalog is closed")
	}
	results := make([]*function.Entry, len(descs))
	errs := make([]error, len(descs))

	var wg sync.WaitGroup
	for i := range descs {
		if ctx.Err() != nil {
			break
		}
		i := i
		wg.Add(1)
		err := c.pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = moerr.ConvertPanicError(ctx, r)
				}
			}()
			select {
			case <-ctx.Done():
				return
			default:
			}
			results[i] = resolveOne(ctx, c, descs[i], ceiling)
		})
		if err != nil {
			wg.Done()
			errs[i] = moerr.ConvertGoError(ctx, err)
			break
		}
	}
	wg.Wait()

	if ctx.Err() != nil {
		return nil, moerr.NewQueryInterrupted(ctx)
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
