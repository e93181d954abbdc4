package circuit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b := New("horizon", WithFailureThreshold(3))

	assert.False(t, b.RecordFailure())
	assert.False(t, b.RecordFailure())
	assert.True(t, b.RecordFailure(), "third consecutive failure should open the circuit")
	assert.Equal(t, StateOpen, b.State())
	assert.False(t, b.Allow())
}

func TestBreaker_SuccessResetsCount(t *testing.T) {
	b := New("horizon", WithFailureThreshold(2))

	b.RecordFailure()
	b.RecordSuccess()
	assert.False(t, b.RecordFailure(), "count should restart after a success")
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_ProbeAfterCooldown(t *testing.T) {
	current := time.Unix(1000, 0)
	b := New("horizon",
		WithFailureThreshold(1),
		WithCooldown(10*time.Second),
		WithClock(func() time.Time { return current }),
	)

	b.RecordFailure()
	assert.False(t, b.Allow())

	current = current.Add(11 * time.Second)
	assert.True(t, b.Allow(), "a probe should pass once cooldown elapses")
	assert.False(t, b.Allow(), "only one probe per cooldown window")

	b.RecordSuccess()
	assert.True(t, b.Allow())
	assert.Equal(t, StateClosed, b.State())
}
