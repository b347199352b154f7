package aggregator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDamageAccumulates(t *testing.T) {
	a := New()

	var total int
	var err error
	for _, dmg := range []int{10, 15, 7} {
		total, err = a.AddDamage("alice", dmg)
		require.NoError(t, err)
	}

	assert.Equal(t, 32, total)
	assert.Equal(t, 32, a.Total("alice"))
	assert.Equal(t, 0, a.Total("bob"))
}

func TestAddDamageZeroCreatesEntry(t *testing.T) {
	a := New()

	total, err := a.AddDamage("alice", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestAddDamageRejectsNegative(t *testing.T) {
	a := New()
	_, _ = a.AddDamage("alice", 20)

	_, err := a.AddDamage("alice", -5)
	assert.ErrorIs(t, err, ErrNegativeDamage)
	assert.Equal(t, 20, a.Total("alice"))
}

func TestRemoveAndReset(t *testing.T) {
	a := New()
	_, _ = a.AddDamage("alice", 20)
	_, _ = a.AddDamage("bob", 30)

	a.Remove("alice")
	assert.Equal(t, 0, a.Total("alice"))
	assert.Equal(t, 30, a.Total("bob"))

	a.Reset()
	assert.Equal(t, 0, a.Total("bob"))
}

func TestAddDamageConcurrent(t *testing.T) {
	a := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = a.AddDamage("alice", 2)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, a.Total("alice"))
}
