package cmdlinearg

import (
	"github.com/ef-ds/deque"
)

// The arguments still to be parsed. Embedded values are pushed back on the
// front so they're consumed like separate arguments.
type tokenQueue struct {
	d deque.Deque
}

func newTokenQueue(args []string) *tokenQueue {
	q := &tokenQueue{}
	for _, a := range args {
		q.d.PushBack(a)
	}
	return q
}

func (q *tokenQueue) Len() int {
	return q.d.Len()
}

func (q *tokenQueue) pushFront(s string) {
	q.d.PushFront(s)
}

func (q *tokenQueue) popFront() (string, bool) {
	v, ok := q.d.PopFront()
	if !ok {
		return "", false
	}
	return v.(string), true
}
