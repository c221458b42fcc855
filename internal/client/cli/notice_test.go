package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoticeExpires(t *testing.T) {
	now := time.Now()
	n := NewNotice(5 * time.Second)
	n.now = func() time.Time { return now }

	_, ok := n.Current()
	assert.False(t, ok)

	n.Show("Item added to cart.")
	msg, ok := n.Current()
	assert.True(t, ok)
	assert.Equal(t, "Item added to cart.", msg)

	now = now.Add(4 * time.Second)
	_, ok = n.Current()
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = n.Current()
	assert.False(t, ok)

	// stays gone even if time moves back within the window
	now = now.Add(-3 * time.Second)
	_, ok = n.Current()
	assert.False(t, ok)
}

func TestNoticeReplacedAndCleared(t *testing.T) {
	n := NewNotice(5 * time.Second)

	n.Show("first")
	n.Show("second")
	msg, ok := n.Current()
	assert.True(t, ok)
	assert.Equal(t, "second", msg)

	n.Clear()
	_, ok = n.Current()
	assert.False(t, ok)
}
