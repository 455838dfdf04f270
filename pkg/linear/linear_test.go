package linear_test

import (
	"testing"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/linear"
	"github.com/aretw0/algotrace/pkg/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frame struct {
	array       []int
	explanation string
}

func framesOf(steps []domain.Step) []frame {
	out := make([]frame, len(steps))
	for i, s := range steps {
		out[i] = frame{array: s.Array, explanation: s.Explanation}
	}
	return out
}

func TestQueue_FiveNine(t *testing.T) {
	rec := trace.NewRecorder()
	linear.Queue([]int{5, 9}, rec)

	assert.Equal(t, []frame{
		{[]int{5}, "Enqueue(5): Added 5 to the rear"},
		{[]int{5, 9}, "Enqueue(9): Added 9 to the rear"},
		{[]int{5, 9}, "Front: First element is 5"},
		{[]int{9}, "Dequeue(): Removed 5 from the front"},
		{[]int{9}, "Front: First element is 9"},
		{[]int{}, "Dequeue(): Removed 9 from the front"},
	}, framesOf(rec.Steps()))

	assert.Equal(t, []int{0}, rec.Steps()[2].Comparing, "peek highlights the front")
}

func TestStack_PopsFromTheTop(t *testing.T) {
	rec := trace.NewRecorder()
	linear.Stack([]int{5, 9}, rec)
	steps := rec.Steps()
	require.Len(t, steps, 6)

	assert.Equal(t, "Peek: Top element is 9", steps[2].Explanation)
	assert.Equal(t, []int{1}, steps[2].Comparing)
	assert.Equal(t, []int{5}, steps[3].Array)
	assert.Equal(t, "Pop(): Removed 5 from the top", steps[5].Explanation)

	for _, s := range steps {
		assert.Zero(t, s.Comparisons)
		assert.Zero(t, s.Swaps)
	}
}

func TestDemo(t *testing.T) {
	for _, kind := range []linear.Kind{linear.KindStack, linear.KindQueue} {
		t.Run(kind.String(), func(t *testing.T) {
			rec := trace.NewRecorder()
			linear.Demo(kind, rec)
			steps := rec.Steps()

			assert.Equal(t, "Starting Demo...", steps[0].Explanation)
			assert.Equal(t, "Demo Complete", steps[len(steps)-1].Explanation)
			assert.Empty(t, steps[len(steps)-1].Array)
			// 1 start + 4 adds + 1 removal + 1 late add + 4 drains + 1 end.
			assert.Len(t, steps, 12)
		})
	}

	rec := trace.NewRecorder()
	linear.Demo(linear.KindQueue, rec)
	assert.Equal(t, "Dequeue 10 (FIFO - First In First Out)", rec.Steps()[5].Explanation)

	rec = trace.NewRecorder()
	linear.Demo(linear.KindStack, rec)
	assert.Equal(t, "Pop 40 (LIFO - Last In First Out)", rec.Steps()[5].Explanation)
}

func TestKinds(t *testing.T) {
	k, err := linear.KindOf(domain.QueueOps)
	require.NoError(t, err)
	assert.Equal(t, linear.KindQueue, k)

	_, err = linear.KindOf(domain.BubbleSort)
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)

	k, err = linear.ParseKind("stack")
	require.NoError(t, err)
	assert.Equal(t, "Stack", k.String())

	_, err = linear.ParseKind("heap")
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestParseOp(t *testing.T) {
	for in, want := range map[string]linear.Op{
		"push": linear.OpPush, "Enqueue": linear.OpPush,
		"pop": linear.OpPop, " dequeue ": linear.OpPop,
	} {
		got, err := linear.ParseOp(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := linear.ParseOp("peek")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
