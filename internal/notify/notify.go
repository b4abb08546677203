// Package notify keeps the transient messages (toasts) shown to the user.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// Level indicates how a notice is rendered.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notice is one toast.
type Notice struct {
	ID        string
	Level     Level
	Text      string
	CreatedAt time.Time
}

// Queue holds the visible notices, oldest first. The zero value is usable and
// keeps every notice; set MaxVisible to bound it.
type Queue struct {
	MaxVisible int
	notices    []Notice
	now        func() time.Time
}

// NewQueue returns a queue that keeps at most maxVisible notices.
func NewQueue(maxVisible int) *Queue {
	return &Queue{MaxVisible: maxVisible}
}

// Push appends a notice and returns it. When the queue is full the oldest
// notices are dropped.
func (q *Queue) Push(level Level, text string) Notice {
	now := time.Now
	if q.now != nil {
		now = q.now
	}
	n := Notice{ID: uuid.NewString(), Level: level, Text: text, CreatedAt: now()}
	q.notices = append(q.notices, n)
	if q.MaxVisible > 0 && len(q.notices) > q.MaxVisible {
		q.notices = append([]Notice(nil), q.notices[len(q.notices)-q.MaxVisible:]...)
	}
	return n
}

// Error pushes an error notice.
func (q *Queue) Error(text string) Notice {
	return q.Push(LevelError, text)
}

// Info pushes an info notice.
func (q *Queue) Info(text string) Notice {
	return q.Push(LevelInfo, text)
}

// Dismiss removes the notice with id. Unknown ids are ignored.
func (q *Queue) Dismiss(id string) bool {
	for i, n := range q.notices {
		if n.ID == id {
			q.notices = append(q.notices[:i], q.notices[i+1:]...)
			return true
		}
	}
	return false
}

// Visible returns the current notices, oldest first.
func (q *Queue) Visible() []Notice {
	return append([]Notice(nil), q.notices...)
}

// Len is the number of visible notices.
func (q *Queue) Len() int {
	return len(q.notices)
}

// Clear drops every notice.
func (q *Queue) Clear() {
	q.notices = nil
}
