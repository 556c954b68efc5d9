package turtle

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// Queue is a double-ended queue of commands.
//
// Commands are consumed from the front. Wait and RestoreWaypoint put
// commands back at the front, so the queue supports insertion at both ends.
//
// The zero value is not usable; create queues with NewQueue.
// A Queue is not safe for concurrent use.
type Queue struct {
	list *doublylinkedlist.List
}

// NewQueue creates a queue holding cmds in order.
func NewQueue(cmds ...Command) *Queue {
	q := &Queue{list: doublylinkedlist.New()}
	for _, c := range cmds {
		q.list.Append(c)
	}
	return q
}

// Len returns the number of queued commands.
func (q *Queue) Len() int {
	return q.list.Size()
}

// Empty reports whether the queue holds no commands.
func (q *Queue) Empty() bool {
	return q.list.Empty()
}

// PushBack appends a command at the back.
func (q *Queue) PushBack(c Command) {
	q.list.Append(c)
}

// PushFront inserts a command at the front, ahead of everything queued.
func (q *Queue) PushFront(c Command) {
	q.list.Prepend(c)
}

// Front returns the front command without removing it.
func (q *Queue) Front() (Command, bool) {
	v, ok := q.list.Get(0)
	if !ok {
		return nil, false
	}
	return v.(Command), true
}

// PopFront removes and returns the front command.
func (q *Queue) PopFront() (Command, bool) {
	c, ok := q.Front()
	if ok {
		q.list.Remove(0)
	}
	return c, ok
}

// Clone returns an independent copy of the queue.
// Commands are values, so the copy shares nothing with q.
func (q *Queue) Clone() *Queue {
	return &Queue{list: doublylinkedlist.New(q.list.Values()...)}
}

// Commands returns the queued commands front to back.
func (q *Queue) Commands() []Command {
	cmds := make([]Command, 0, q.list.Size())
	it := q.list.Iterator()
	for it.Next() {
		cmds = append(cmds, it.Value().(Command))
	}
	return cmds
}

// Reset removes every command.
func (q *Queue) Reset() {
	q.list.Clear()
}
