package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventQueue(t *testing.T) {
	q := newEventQueue(2)

	_, ok := q.pop()
	assert.False(t, ok)

	q.push(nil)
	assert.Zero(t, q.len())

	q.push(KeyPress{Code: 1})
	q.push(Resize{Width: 10, Height: 20})
	q.push(ClientMessage{})
	assert.Equal(t, 2, q.len(), "oldest event is dropped once full")

	e, ok := q.pop()
	assert.True(t, ok)
	assert.Equal(t, Resize{Width: 10, Height: 20}, e)

	e, ok = q.pop()
	assert.True(t, ok)
	assert.Equal(t, ClientMessage{}, e)

	_, ok = q.pop()
	assert.False(t, ok)
}

func TestEventQueueDefaultLimit(t *testing.T) {
	q := newEventQueue(0)
	for i := 0; i < 2000; i++ {
		q.push(MotionNotify{X: i})
	}
	assert.Equal(t, 1024, q.len())
	e, _ := q.pop()
	assert.Equal(t, MotionNotify{X: 2000 - 1024}, e)
}
