// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package ledger

import (
	"sort"
	"sync"
)

// keyedMutex serializes operations per entry id. Locks are created lazily
// and never released from the map; entry counts stay small enough that the
// bookkeeping is not worth it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{
		locks: make(map[string]*sync.Mutex),
	}
}

func (k *keyedMutex) get(
	key string,
) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}

	return m
}

// lock acquires the mutex for a single entry id.
func (k *keyedMutex) lock(
	key string,
) func() {
	m := k.get(key)
	m.Lock()

	return m.Unlock
}

// lockPair acquires both mutexes in lexical key order so that two
// operations touching the same pair cannot deadlock.
func (k *keyedMutex) lockPair(
	a string,
	b string,
) func() {
	if a == b {
		return k.lock(a)
	}

	keys := []string{a, b}
	sort.Strings(keys)

	first := k.get(keys[0])
	second := k.get(keys[1])
	first.Lock()
	second.Lock()

	return func() {
		second.Unlock()
		first.Unlock()
	}
}
