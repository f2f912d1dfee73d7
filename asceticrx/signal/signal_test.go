package signal

import (
	"testing"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// source is a hand-driven producer: push resolves a value on every live
// subscription.
type source[T any] struct {
	resolvers     []func(T)
	subscriptions int
}

func (s *source[T]) signal() *Signal[T] {
	return New(func(resolve func(T)) {
		s.subscriptions++
		s.resolvers = append(s.resolvers, resolve)
	})
}

func (s *source[T]) push(value T) {
	for _, resolve := range s.resolvers {
		resolve(value)
	}
}

func collect[T any](s *Signal[T]) *[]T {
	got := []T{}
	s.Listen(func(v T) { got = append(got, v) })
	return &got
}

func TestNew(t *testing.T) {
	t.Run("producer is not invoked at construction", func(t *testing.T) {
		calls := 0
		New(func(resolve func(int)) { calls++ })
		assert.Equal(t, 0, calls)
	})

	t.Run("producer runs once per listen", func(t *testing.T) {
		calls := 0
		s := New(func(resolve func(int)) {
			calls++
			resolve(calls)
		})
		first := collect(s)
		second := collect(s)
		assert.Equal(t, 2, calls)
		assert.Equal(t, []int{1}, *first)
		assert.Equal(t, []int{2}, *second)
	})

	t.Run("later resolutions are delivered in call order", func(t *testing.T) {
		src := &source[string]{}
		got := collect(src.signal())
		src.push("a")
		src.push("b")
		src.push("a")
		assert.Equal(t, []string{"a", "b", "a"}, *got)
	})
}

func TestCreate(t *testing.T) {
	t.Run("teardown runs on dispose", func(t *testing.T) {
		released := 0
		var resolveLater func(int)
		s := Create(func(resolve func(int)) disposable.Disposable {
			resolve(1)
			resolveLater = resolve
			return disposable.NewDisposable(func() { released++ })
		})
		got := []int{}
		d := s.Listen(func(v int) { got = append(got, v) })
		resolveLater(2)
		d.Dispose()
		resolveLater(3)
		assert.Equal(t, []int{1, 2}, got)
		assert.Equal(t, 1, released)
	})

	t.Run("nil teardown", func(t *testing.T) {
		s := Create(func(resolve func(int)) disposable.Disposable {
			resolve(1)
			return nil
		})
		d := s.Listen(func(int) {})
		d.Dispose() // should not panic
	})
}

func TestUnit(t *testing.T) {
	got := collect(Unit(7))
	assert.Equal(t, []int{7}, *got)
}

func TestOf(t *testing.T) {
	t.Run("values in order", func(t *testing.T) {
		assert.Equal(t, []int{3, 1, 2}, *collect(Of(3, 1, 2)))
	})

	t.Run("no values", func(t *testing.T) {
		assert.Equal(t, []int{}, *collect(Of[int]()))
	})
}

func TestListen_Dispose(t *testing.T) {
	t.Run("stops delivery", func(t *testing.T) {
		src := &source[int]{}
		got := []int{}
		d := src.signal().Listen(func(v int) { got = append(got, v) })
		src.push(1)
		d.Dispose()
		src.push(2)
		assert.Equal(t, []int{1}, got)
		assert.True(t, d.IsDisposed())
	})

	t.Run("disposing one subscription leaves the other running", func(t *testing.T) {
		src := &source[int]{}
		s := Fmap(src.signal(), func(v int) int { return v * 10 })
		var first, second []int
		d := s.Listen(func(v int) { first = append(first, v) })
		s.Listen(func(v int) { second = append(second, v) })
		src.push(1)
		d.Dispose()
		src.push(2)
		assert.Equal(t, []int{10}, first)
		assert.Equal(t, []int{10, 20}, second)
	})

	t.Run("propagates through combinators", func(t *testing.T) {
		a, b := &source[int]{}, &source[int]{}
		s := Fold(Combine(a.signal(), b.signal()), func(acc int, vs []int) int { return acc + vs[0] + vs[1] }, 0)
		got := []int{}
		d := s.Listen(func(v int) { got = append(got, v) })
		a.push(1)
		b.push(2)
		d.Dispose()
		a.push(3)
		b.push(4)
		assert.Equal(t, []int{3}, got)
	})
}

func TestFmap(t *testing.T) {
	src := &source[int]{}
	got := collect(Fmap(src.signal(), func(v int) string { return string(rune('a' + v)) }))
	src.push(0)
	src.push(2)
	assert.Equal(t, []string{"a", "c"}, *got)
}

func TestBind(t *testing.T) {
	t.Run("switches to the latest inner signal", func(t *testing.T) {
		outer := &source[int]{}
		inners := map[int]*source[int]{1: {}, 2: {}}
		got := collect(Bind(outer.signal(), func(k int) *Signal[int] { return inners[k].signal() }))

		outer.push(1)
		inners[1].push(10)
		outer.push(2)
		inners[1].push(11)
		inners[2].push(20)
		inners[1].push(12)

		assert.Equal(t, []int{10, 20}, *got)
	})

	t.Run("forwards synchronous inner values", func(t *testing.T) {
		outer := &source[int]{}
		got := collect(Bind(outer.signal(), func(v int) *Signal[int] { return Of(v, v+1) }))
		outer.push(1)
		outer.push(5)
		assert.Equal(t, []int{1, 2, 5, 6}, *got)
	})

	t.Run("superseded inner subscription is disposed", func(t *testing.T) {
		outer := &source[int]{}
		inner := &source[int]{}
		got := collect(Bind(outer.signal(), func(v int) *Signal[int] {
			if v == 1 {
				return inner.signal()
			}
			return Unit(v)
		}))
		outer.push(1)
		outer.push(2)
		inner.push(99)
		assert.Equal(t, []int{2}, *got)
	})

	t.Run("outer resolution while subscribing the inner signal", func(t *testing.T) {
		outer := &source[int]{}
		got := collect(Bind(outer.signal(), func(v int) *Signal[int] {
			if v != 1 {
				return Unit(v * 10)
			}
			return New(func(resolve func(int)) {
				resolve(100)
				outer.push(2)
				resolve(101)
			})
		}))
		outer.push(1)
		outer.push(3)
		assert.Equal(t, []int{100, 20, 30}, *got)
	})

	t.Run("dispose releases the inner subscription", func(t *testing.T) {
		outer := &source[int]{}
		inner := &source[int]{}
		got := []int{}
		d := Bind(outer.signal(), func(int) *Signal[int] { return inner.signal() }).Listen(func(v int) {
			got = append(got, v)
		})
		outer.push(1)
		inner.push(1)
		d.Dispose()
		inner.push(2)
		outer.push(2)
		assert.Equal(t, []int{1}, got)
		assert.Equal(t, 1, inner.subscriptions)
	})
}

func TestFold(t *testing.T) {
	t.Run("seed is not resolved", func(t *testing.T) {
		src := &source[int]{}
		got := collect(Fold(src.signal(), func(acc, v int) int { return acc + v }, 100))
		assert.Empty(t, *got)
		src.push(1)
		assert.Equal(t, []int{101}, *got)
	})

	t.Run("each subscription accumulates from the seed", func(t *testing.T) {
		src := &source[int]{}
		s := Fold(src.signal(), func(acc, v int) int { return acc + v }, 0)
		first := collect(s)
		src.push(1)
		second := collect(s)
		src.push(2)
		assert.Equal(t, []int{1, 3}, *first)
		assert.Equal(t, []int{2}, *second)
	})
}

func TestCombine(t *testing.T) {
	t.Run("waits until every source resolved", func(t *testing.T) {
		a, b, c := &source[int]{}, &source[int]{}, &source[int]{}
		got := collect(Combine(a.signal(), b.signal(), c.signal()))
		a.push(1)
		b.push(2)
		a.push(3)
		assert.Empty(t, *got)
		c.push(4)
		b.push(5)
		assert.Equal(t, [][]int{{3, 2, 4}, {3, 5, 4}}, *got)
	})

	t.Run("keeps the last synchronous value of a source that is not ready yet", func(t *testing.T) {
		got := collect(Combine(Of(1, 2), Of(10, 20)))
		assert.Equal(t, [][]int{{2, 10}, {2, 20}}, *got)
	})

	t.Run("one emission per resolution", func(t *testing.T) {
		a, b := &source[int]{}, &source[int]{}
		got := collect(Combine(a.signal(), b.signal()))
		a.push(1)
		b.push(1)
		a.push(2)
		b.push(2)
		assert.Equal(t, [][]int{{1, 1}, {2, 1}, {2, 2}}, *got)
	})

	t.Run("emitted slices are not reused", func(t *testing.T) {
		a, b := &source[int]{}, &source[int]{}
		got := collect(Combine(a.signal(), b.signal()))
		a.push(1)
		b.push(1)
		(*got)[0][0] = 42
		a.push(2)
		assert.Equal(t, [][]int{{42, 1}, {2, 1}}, *got)
	})

	t.Run("no sources resolves one empty tuple", func(t *testing.T) {
		got := collect(Combine[int]())
		assert.Equal(t, [][]int{{}}, *got)
	})

	t.Run("sources subscribed in argument order", func(t *testing.T) {
		var order []string
		named := func(name string) *Signal[string] {
			return New(func(resolve func(string)) {
				order = append(order, name)
				resolve(name)
			})
		}
		collect(Combine(named("a"), named("b"), named("c")))
		assert.Equal(t, []string{"a", "b", "c"}, order)
	})
}

func TestCombineTyped(t *testing.T) {
	t.Run("pair", func(t *testing.T) {
		n := &source[int]{}
		got := collect(Combine2(Unit("x"), n.signal()))
		n.push(1)
		n.push(2)
		assert.Equal(t, []Tuple2[string, int]{{"x", 1}, {"x", 2}}, *got)
	})

	t.Run("nil interface values", func(t *testing.T) {
		got := collect(Combine2(Unit[error](nil), Unit(1)))
		require.Len(t, *got, 1)
		assert.Nil(t, (*got)[0].V1)
		assert.Equal(t, 1, (*got)[0].V2)
	})

	t.Run("triple", func(t *testing.T) {
		got := collect(Combine3(Unit(1), Unit("b"), Of(true, false)))
		assert.Equal(t, []Tuple3[int, string, bool]{{1, "b", true}, {1, "b", false}}, *got)
		assert.Equal(t, "(1, b, true)", (*got)[0].String())
	})
}

func TestLift(t *testing.T) {
	t.Run("variadic", func(t *testing.T) {
		sum := Lift(func(xs ...int) int {
			total := 0
			for _, x := range xs {
				total += x
			}
			return total
		})
		a := &source[int]{}
		got := collect(sum(a.signal(), Unit(10), Unit(100)))
		a.push(1)
		a.push(2)
		assert.Equal(t, []int{111, 112}, *got)
	})

	t.Run("three arguments", func(t *testing.T) {
		join := Lift3(func(a string, b int, c bool) string {
			if c {
				return a + string(rune('0'+b))
			}
			return a
		})
		assert.Equal(t, []string{"v7"}, *collect(join(Unit("v"), Unit(7), Unit(true))))
	})
}

func TestApply(t *testing.T) {
	t.Run("function source is subscribed first", func(t *testing.T) {
		var order []string
		sf := New(func(resolve func(func(int) int)) {
			order = append(order, "f")
			resolve(func(x int) int { return x + 1 })
		})
		sx := New(func(resolve func(int)) {
			order = append(order, "x")
			resolve(1)
		})
		got := collect(Apply(sf, sx))
		assert.Equal(t, []string{"f", "x"}, order)
		assert.Equal(t, []int{2}, *got)
	})

	t.Run("recomputes on either side", func(t *testing.T) {
		fs := &source[func(int) int]{}
		xs := &source[int]{}
		got := collect(Apply(fs.signal(), xs.signal()))
		xs.push(3)
		fs.push(func(x int) int { return x * 2 })
		xs.push(4)
		fs.push(func(x int) int { return -x })
		assert.Equal(t, []int{6, 8, -4}, *got)
	})
}

func TestShare(t *testing.T) {
	t.Run("listeners share one upstream subscription", func(t *testing.T) {
		src := &source[int]{}
		s := Share(src.signal())
		first := collect(s)
		src.push(1)
		second := collect(s)
		src.push(2)
		assert.Equal(t, 1, src.subscriptions)
		assert.Equal(t, []int{1, 2}, *first)
		assert.Equal(t, []int{2}, *second)
	})

	t.Run("last dispose releases upstream and next listen reconnects", func(t *testing.T) {
		src := &source[int]{}
		s := Share(src.signal())
		var got []int
		d1 := s.Listen(func(v int) { got = append(got, v) })
		d2 := s.Listen(func(v int) { got = append(got, v*10) })
		src.push(1)
		d1.Dispose()
		src.push(2)
		d2.Dispose()
		src.push(3)
		assert.Equal(t, []int{1, 10, 20}, got)

		again := collect(s)
		src.push(4)
		assert.Equal(t, 2, src.subscriptions)
		assert.Equal(t, []int{4}, *again)
	})

	t.Run("synchronous values reach only the connecting listener", func(t *testing.T) {
		s := Share(Of(1, 2))
		first := collect(s)
		second := collect(s)
		assert.Equal(t, []int{1, 2}, *first)
		assert.Empty(t, *second)
	})
}

func TestLatch(t *testing.T) {
	l := newLatch[string](2)
	_, ok := l.set(0, "a")
	assert.False(t, ok)
	_, ok = l.set(0, "b")
	assert.False(t, ok)
	values, ok := l.set(1, "c")
	assert.True(t, ok)
	assert.Equal(t, []string{"b", "c"}, values)
	assert.Equal(t, 2, l.ready)
}

func TestCast(t *testing.T) {
	assert.Equal(t, 3, cast[int](3))
	assert.Equal(t, 0, cast[int](nil))
	assert.Nil(t, cast[error](nil))
}
