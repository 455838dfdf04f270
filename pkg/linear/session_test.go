package linear_test

import (
	"testing"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/linear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_StartsEmpty(t *testing.T) {
	s := linear.NewSession(linear.KindQueue)
	assert.Equal(t, linear.KindQueue, s.Kind())
	require.Len(t, s.Steps(), 1)
	assert.Equal(t, "Queue is empty", s.Current().Explanation)
	assert.Equal(t, []int{}, s.Current().Array)
}

func TestSession_PushPop(t *testing.T) {
	s := linear.NewSession(linear.KindStack)

	step, err := s.Push(4)
	require.NoError(t, err)
	assert.Equal(t, "Pushed 4 onto the stack", step.Explanation)
	assert.Equal(t, []int{0}, step.Comparing)

	_, err = s.Push(8)
	require.NoError(t, err)

	step, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "Popped 8 from the stack", step.Explanation)
	assert.Equal(t, []int{4}, step.Array)
	assert.Equal(t, 3, s.Cursor())
}

func TestSession_QueueRemovesFront(t *testing.T) {
	s := linear.NewSession(linear.KindQueue)
	_, _ = s.Push(1)
	_, _ = s.Push(2)
	step, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "Dequeued 1", step.Explanation)
	assert.Equal(t, []int{2}, step.Array)
}

func TestSession_RejectionsLeaveHistoryAlone(t *testing.T) {
	s := linear.NewSession(linear.KindStack, linear.WithCapacity(1))

	_, err := s.Pop()
	assert.ErrorIs(t, err, domain.ErrEmptyStructure)
	assert.Len(t, s.Steps(), 1)

	_, err = s.Push(1)
	require.NoError(t, err)
	_, err = s.Push(2)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Len(t, s.Steps(), 2)
	assert.Equal(t, 1, s.Cursor())
}

func TestSession_SeekTruncatesOnNextOperation(t *testing.T) {
	s := linear.NewSession(linear.KindStack)
	for _, v := range []int{1, 2, 3} {
		_, err := s.Push(v)
		require.NoError(t, err)
	}
	require.Len(t, s.Steps(), 4)

	require.NoError(t, s.Seek(1))
	assert.Len(t, s.Steps(), 4, "seeking alone keeps the future")

	_, err := s.Push(9)
	require.NoError(t, err)
	require.Len(t, s.Steps(), 3)
	assert.Equal(t, []int{1, 9}, s.Current().Array)

	assert.ErrorIs(t, s.Seek(3), domain.ErrStepOutOfRange)
	assert.ErrorIs(t, s.Seek(-1), domain.ErrStepOutOfRange)
}

func TestSession_Reset(t *testing.T) {
	s := linear.NewSession(linear.KindQueue)
	_, _ = s.Push(1)
	s.Reset()
	assert.Len(t, s.Steps(), 1)
	assert.Zero(t, s.Cursor())
}

func TestApply_DoesNotShareHistory(t *testing.T) {
	history := []domain.Step{linear.EmptyStep(linear.KindStack)}
	next, err := linear.Apply(linear.KindStack, linear.OpPush, history, 0, 5, linear.DefaultCapacity)
	require.NoError(t, err)
	require.Len(t, next, 2)

	next[0].Explanation = "changed"
	assert.Equal(t, "Stack is empty", history[0].Explanation)

	_, err = linear.Apply(linear.KindStack, linear.OpPush, history, 2, 5, linear.DefaultCapacity)
	assert.ErrorIs(t, err, domain.ErrStepOutOfRange)
}
