// Copyright (c) 2026 The asc Authors
//
// MIT License

package asc

import (
	"sync/atomic"
	"testing"

	"github.com/zeebo/assert"
)

func TestWorkerPoolJoinWaitsForAllDispatches(t *testing.T) {
	wp := newWorkerPool(4)
	var done int32
	const n = 50
	for i := 0; i < n; i++ {
		wp.Dispatch(func() {
			atomic.AddInt32(&done, 1)
		})
	}
	wp.Join()
	assert.Equal(t, int32(n), atomic.LoadInt32(&done))
}

func TestWorkerPoolNeverExceedsCapacity(t *testing.T) {
	capacity := 3
	wp := newWorkerPool(capacity)
	var inFlight, maxSeen int32
	const n = 60
	release := make(chan struct{})
	for i := 0; i < n; i++ {
		ch := release
		wp.Dispatch(func() {
			cur := atomic.AddInt32(&inFlight, 1)
			for {
				max := atomic.LoadInt32(&maxSeen)
				if cur <= max || atomic.CompareAndSwapInt32(&maxSeen, max, cur) {
					break
				}
			}
			<-ch
			atomic.AddInt32(&inFlight, -1)
		})
		close(release)
		release = make(chan struct{})
	}
	close(release)
	wp.Join()
	assert.That(t, atomic.LoadInt32(&maxSeen) <= int32(capacity))
}

func TestWorkerPoolDispatchSlotAlwaysReleased(t *testing.T) {
	wp := newWorkerPool(2)
	// A task that finds nothing worth publishing must still release its
	// slot: this exercises the unconditional-release fix to the
	// reference pool's leak.
	for i := 0; i < 10; i++ {
		wp.Dispatch(func() {})
	}
	wp.Join()
	wp.mu.Lock()
	idle := wp.idle
	wp.mu.Unlock()
	assert.Equal(t, 2, idle)
}

func TestWorkerPoolLockUnlockGuardsSharedState(t *testing.T) {
	wp := newWorkerPool(8)
	shared := 0
	const n = 200
	for i := 0; i < n; i++ {
		wp.Dispatch(func() {
			wp.Lock()
			shared++
			wp.Unlock()
		})
	}
	wp.Join()
	assert.Equal(t, n, shared)
}
