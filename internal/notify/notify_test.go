package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQueue_PushTrims(t *testing.T) {
	q := NewQueue(2)
	a := q.Error("first")
	b := q.Info("second")
	c := q.Error("third")

	require.NotEqual(t, a.ID, b.ID)
	visible := q.Visible()
	require.Len(t, visible, 2)
	require.Equal(t, b.ID, visible[0].ID)
	require.Equal(t, c.ID, visible[1].ID)
	require.Equal(t, LevelError, visible[1].Level)

	require.False(t, q.Dismiss(a.ID), "trimmed notice is already gone")
}

func TestQueue_Dismiss(t *testing.T) {
	q := NewQueue(0)
	a := q.Info("a")
	b := q.Info("b")

	require.True(t, q.Dismiss(a.ID))
	require.False(t, q.Dismiss(a.ID))
	require.Equal(t, 1, q.Len())
	require.Equal(t, b.ID, q.Visible()[0].ID)

	q.Clear()
	require.Zero(t, q.Len())
}

func TestQueue_CreatedAt(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	q := &Queue{now: func() time.Time { return fixed }}
	n := q.Info("x")
	require.Equal(t, fixed, n.CreatedAt)
}

func TestQueue_VisibleIsCopy(t *testing.T) {
	q := NewQueue(3)
	q.Info("x")
	v := q.Visible()
	v[0].Text = "changed"
	require.Equal(t, "x", q.Visible()[0].Text)
}
