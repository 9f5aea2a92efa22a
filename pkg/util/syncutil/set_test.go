// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package syncutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetBasic(t *testing.T) {
	var s Set[int]

	require.False(t, s.Contains(1))

	require.True(t, s.Add(1))
	require.False(t, s.Add(1))
	require.True(t, s.Add(2))
	require.True(t, s.Contains(1))
	require.True(t, s.Contains(2))
	require.False(t, s.Contains(3))
}

func TestSetConcurrentAdd(t *testing.T) {
	var s Set[string]
	const numWorkers = 16
	var wg sync.WaitGroup
	var mu Mutex
	added := 0
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Add("orders") {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, added)
	require.True(t, s.Contains("orders"))
}
