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

import (
	"strings"
	"sync"

	"github.com/google/btree"
)

const namesDegree = 16

// Registry maps function names to their overloads in registration order.
// Lookups and resolution run concurrently with each other; Add and Drop
// are serialized. Every change publishes a fresh overload slice, so a
// slice handed out to a reader never changes under it.
type Registry struct {
	mu        sync.RWMutex
	functions map[string]*overloads
	// names keeps the registered keys sorted for listing.
	names   *btree.BTree
	nextFid int32
	count   int
}

// overloads records all overloads of the same function name.
type overloads struct {
	fid int32
	// seq numbers overloads of this name, never reused.
	seq     int32
	entries []*Entry
}

type nameItem string

func (n nameItem) Less(than btree.Item) bool {
	return n < than.(nameItem)
}

func NewRegistry() *Registry {
	return &Registry{
		functions: make(map[string]*overloads),
		names:     btree.New(namesDegree),
	}
}

// Add appends e to the overloads of its name and reports true, unless an
// overload already registered under that name is indistinguishable from
// it, in which case nothing changes and false is returned. The published
// entry is a copy of e stamped with its overload id.
func (r *Registry) Add(e *Entry) bool {
	desc := e.sig.Desc()
	key := desc.Name.Key()

	r.mu.Lock()
	defer r.mu.Unlock()
	fs, ok := r.functions[key]
	if ok {
		if dup, _ := resolve(fs.entries, desc, IsIndistinguishable); dup != nil {
			return false
		}
	} else {
		fs = &overloads{fid: r.nextFid}
		r.nextFid++
		r.functions[key] = fs
		r.names.ReplaceOrInsert(nameItem(key))
	}

	stored := *e
	stored.overloadID = EncodeOverloadID(fs.fid, fs.seq)
	fs.seq++
	entries := make([]*Entry, len(fs.entries), len(fs.entries)+1)
	copy(entries, fs.entries)
	fs.entries = append(entries, &stored)
	r.count++
	return true
}

// LookupByName returns the overloads of name in registration order. The
// slice must not be modified.
func (r *Registry) LookupByName(name string) []*Entry {
	return r.lookup(ParseFunctionName(name).Key())
}

func (r *Registry) lookup(key string) []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fs, ok := r.functions[key]; ok {
		return fs.entries
	}
	return nil
}

// LookupByExactText scans every overload for one whose signature text is
// exactly text. It is meant for diagnostics, not for resolution.
func (r *Registry) LookupByExactText(text string) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found *Entry
	r.names.Ascend(func(i btree.Item) bool {
		for _, e := range r.functions[string(i.(nameItem))].entries {
			if e.sig.String() == text {
				found = e
				return false
			}
		}
		return true
	})
	return found
}

// Resolve returns the first overload of d.Name that matches d at the
// tightest mode not looser than ceiling, or nil when no mode up to ceiling
// matches anything.
func (r *Registry) Resolve(d Desc, ceiling CompareMode) *Entry {
	e, _ := resolve(r.lookup(d.Name.Key()), d, ceiling)
	return e
}

// ResolveMode is Resolve that also reports the mode the overload matched
// at. The mode is meaningless when no overload matched.
func (r *Registry) ResolveMode(d Desc, ceiling CompareMode) (*Entry, CompareMode) {
	return resolve(r.lookup(d.Name.Key()), d, ceiling)
}

// Drop removes the overload identical to d and returns it, nil when there
// is none.
func (r *Registry) Drop(d Desc) *Entry {
	key := d.Name.Key()

	r.mu.Lock()
	defer r.mu.Unlock()
	fs, ok := r.functions[key]
	if !ok {
		return nil
	}
	idx := -1
	for i, e := range fs.entries {
		if e.sig.Matches(d, IsIdentical) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	dropped := fs.entries[idx]
	if len(fs.entries) == 1 {
		delete(r.functions, key)
		r.names.Delete(nameItem(key))
	} else {
		entries := make([]*Entry, 0, len(fs.entries)-1)
		entries = append(entries, fs.entries[:idx]...)
		fs.entries = append(entries, fs.entries[idx+1:]...)
	}
	r.count--
	return dropped
}

// Names returns the registered function names starting with prefix, in
// ascending order.
func (r *Registry) Names(prefix string) []string {
	prefix = strings.ToLower(prefix)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	r.names.AscendGreaterOrEqual(nameItem(prefix), func(i btree.Item) bool {
		name := string(i.(nameItem))
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		names = append(names, name)
		return true
	})
	return names
}

// Len is the number of registered overloads across all names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}
