package funcz

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adobaai/underbar/testingz"
)

func TestLimit(t *testing.T) {
	ctx := context.Background()
	upper := Limit(strings.ToUpper, time.Hour, 2)

	testingz.R(upper(ctx, "a")).NoError(t).Equal("A")
	testingz.R(upper(ctx, "b")).NoError(t).Equal("B")

	ctx2, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	testingz.R(upper(ctx2, "c")).ErrorContains(t, "wait for rate limit").Equal("")

	ctx3, cancel3 := context.WithCancel(ctx)
	cancel3()
	testingz.R(upper(ctx3, "d")).ErrorIs(t, context.Canceled)

	t.Run("Fast", func(t *testing.T) {
		var rec testingz.Recorder[int]
		f := Limit(testingz.Func(&rec, func(a int) int { return a }), time.Millisecond, 1)
		for i := range 3 {
			testingz.R(f(ctx, i)).NoError(t).Equal(i)
		}
		assert.Equal(t, []int{0, 1, 2}, rec.Args())
	})
}

func TestDelay(t *testing.T) {
	clk := newFakeClock()
	var rec testingz.Recorder[string]
	record := func(s string) { rec.Record(s) }

	Delay(record, 10*time.Millisecond, "x", WithClock(clk))
	clk.Advance(5 * time.Millisecond)
	rec.AssertCount(t, 0)
	clk.Advance(5 * time.Millisecond)
	assert.Equal(t, []string{"x"}, rec.Args())

	timer := Delay(record, 10*time.Millisecond, "y", WithClock(clk))
	assert.True(t, timer.Stop())
	clk.Advance(time.Second)
	assert.Equal(t, []string{"x"}, rec.Args())

	t.Run("SystemClock", func(t *testing.T) {
		var rec testingz.Recorder[int]
		Delay(func(a int) { rec.Record(a) }, time.Millisecond, 7)
		assert.Eventually(t, func() bool { return rec.Count() == 1 }, time.Second, time.Millisecond)
	})
}
