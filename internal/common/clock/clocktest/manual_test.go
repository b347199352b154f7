package clocktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualFiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	m := New(start)

	var fired []string
	m.AfterFunc(3*time.Second, func() { fired = append(fired, "late") })
	m.AfterFunc(time.Second, func() { fired = append(fired, "early") })

	m.Advance(2 * time.Second)
	assert.Equal(t, []string{"early"}, fired)
	assert.Equal(t, start.Add(2*time.Second), m.Now())

	m.Advance(time.Second)
	assert.Equal(t, []string{"early", "late"}, fired)
	assert.Equal(t, 0, m.Pending())
}

func TestManualStop(t *testing.T) {
	m := New(time.Time{})

	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	m.Advance(time.Minute)
	assert.False(t, fired)
}

func TestManualCallbackCanReschedule(t *testing.T) {
	m := New(time.Time{})

	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			m.AfterFunc(time.Second, tick)
		}
	}
	m.AfterFunc(time.Second, tick)

	m.Advance(10 * time.Second)
	assert.Equal(t, 3, count)
}
