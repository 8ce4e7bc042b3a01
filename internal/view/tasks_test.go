package view

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalesces(t *testing.T) {
	var calls atomic.Int32
	var d Debouncer

	for i := 0; i < 5; i++ {
		d.Trigger(20*time.Millisecond, func() { calls.Add(1) })
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 },
		time.Second, 5*time.Millisecond)

	// No second firing later.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncerCancel(t *testing.T) {
	var calls atomic.Int32
	var d Debouncer

	d.Trigger(20*time.Millisecond, func() { calls.Add(1) })
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	// Cancel with nothing pending is fine.
	d.Cancel()
}

func TestDebouncerFlush(t *testing.T) {
	var calls atomic.Int32
	var d Debouncer

	d.Trigger(time.Hour, func() { calls.Add(1) })
	d.Flush(func() { calls.Add(1) })

	assert.Equal(t, int32(1), calls.Load())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
