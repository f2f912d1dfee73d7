package main

import (
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/scheduler"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/signal"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/signal/signaltest"
)

type intFn = func(int) int

// scenario subscribes its signals on loop and returns the probes to check
// once the loop has drained.
type scenario struct {
	name        string
	description string
	build       func(loop *scheduler.Loop, cfg Config) []probe
}

func double(x int) int { return x * 2 }
func inc(x int) int    { return x + 1 }

var scenarios = []scenario{
	{
		name:        "monad-left-identity",
		description: "bind(unit(a), f) <=> f(a)",
		build: func(loop *scheduler.Loop, cfg Config) []probe {
			f := func(x int) *signal.Signal[int] { return signaltest.CountTo(loop, x, cfg.FastDelay) }
			return []probe{
				expect("bind(unit(2), countTo)", signal.Bind(signal.Unit(2), f), []int{0, 1, 2}),
				expect("countTo(2)", f(2), []int{0, 1, 2}),
			}
		},
	},
	{
		name:        "monad-right-identity",
		description: "bind(m, unit) <=> m",
		build: func(loop *scheduler.Loop, cfg Config) []probe {
			m := signaltest.CountTo(loop, 2, cfg.FastDelay)
			return []probe{
				expect("bind(m, unit)", signal.Bind(m, signal.Unit[int]), []int{0, 1, 2}),
			}
		},
	},
	{
		name:        "monad-associativity",
		description: "bind(bind(m, f), g) <=> bind(m, x => bind(f(x), g))",
		build: func(loop *scheduler.Loop, cfg Config) []probe {
			m := signaltest.CountTo(loop, 2, cfg.FastDelay)
			f := func(x int) *signal.Signal[int] { return signal.Unit(double(x)) }
			g := func(x int) *signal.Signal[int] { return signal.Unit(inc(x)) }
			return []probe{
				expect("bind(bind(m, f), g)", signal.Bind(signal.Bind(m, f), g), []int{1, 3, 5}),
				expect("bind(m, x => bind(f(x), g))", signal.Bind(m, func(x int) *signal.Signal[int] {
					return signal.Bind(f(x), g)
				}), []int{1, 3, 5}),
			}
		},
	},
	{
		name:        "functor-identity",
		description: "fmap(x => x) <=> x => x",
		build: func(loop *scheduler.Loop, cfg Config) []probe {
			s := signaltest.CountTo(loop, 2, cfg.FastDelay)
			return []probe{
				expect("fmap(s, id)", signal.Fmap(s, func(x int) int { return x }), []int{0, 1, 2}),
			}
		},
	},
	{
		name:        "functor-composition",
		description: "fmap(comp(f, g)) <=> comp(fmap(f), fmap(g))",
		build: func(loop *scheduler.Loop, cfg Config) []probe {
			s := signaltest.CountTo(loop, 2, cfg.FastDelay)
			return []probe{
				expect("fmap(fmap(s, double), inc)", signal.Fmap(signal.Fmap(s, double), inc), []int{1, 3, 5}),
				expect("fmap(s, inc . double)", signal.Fmap(s, func(x int) int { return inc(double(x)) }), []int{1, 3, 5}),
			}
		},
	},
	{
		name:        "applicative-identity",
		description: "apply(unit(x => x), s) <=> s",
		build: func(loop *scheduler.Loop, cfg Config) []probe {
			s := signaltest.CountTo(loop, 2, cfg.FastDelay)
			return []probe{
				expect("apply(unit(id), s)", signal.Apply(signal.Unit[intFn](func(x int) int { return x }), s), []int{0, 1, 2}),
			}
		},
	},
	{
		name:        "applicative-composition",
		description: "unit(comp).apply(s).apply(t).apply(u) <=> s.apply(t.apply(u))",
		build: func(loop *scheduler.Loop, cfg Config) []probe {
			compose := func(f intFn) func(intFn) intFn {
				return func(g intFn) intFn {
					return func(x int) int { return f(g(x)) }
				}
			}
			sDouble := signal.Unit[intFn](double)
			sInc := signal.Unit[intFn](inc)
			u := signaltest.CountTo(loop, 2, cfg.FastDelay)
			return []probe{
				expect("unit(comp).apply(s).apply(t).apply(u)",
					signal.Apply(signal.Apply(signal.Apply(signal.Unit(compose), sDouble), sInc), u), []int{2, 4, 6}),
				expect("s.apply(t.apply(u))", signal.Apply(sDouble, signal.Apply(sInc, u)), []int{2, 4, 6}),
			}
		},
	},
	{
		name:        "applicative-homomorphism",
		description: "unit(f).apply(unit(x)) <=> unit(f(x))",
		build: func(loop *scheduler.Loop, cfg Config) []probe {
			return []probe{
				expect("unit(double).apply(unit(2))", signal.Apply(signal.Unit[intFn](double), signal.Unit(2)), []int{4}),
				expect("unit(double(2))", signal.Unit(double(2)), []int{4}),
			}
		},
	},
	{
		name:        "applicative-interchange",
		description: "unit(f => f(x)).apply(s) <=> s.apply(unit(x))",
		build: func(loop *scheduler.Loop, cfg Config) []probe {
			sDouble := signal.Unit[intFn](double)
			return []probe{
				expect("unit(f => f(2)).apply(s)", signal.Apply(signal.Unit(func(f intFn) int { return f(2) }), sDouble), []int{4}),
				expect("s.apply(unit(2))", signal.Apply(sDouble, signal.Unit(2)), []int{4}),
			}
		},
	},
	{
		name:        "fold",
		description: "running sum of countTo(3)",
		build: func(loop *scheduler.Loop, cfg Config) []probe {
			s := signal.Fold(signaltest.CountTo(loop, 3, cfg.FastDelay), func(a, b int) int { return a + b }, 0)
			return []probe{expect("fold(countTo(3), +, 0)", s, []int{0, 1, 3, 6})}
		},
	},
	{
		name:        "combine",
		description: "combine(countTo(1, slow), countTo(2, fast))",
		build: func(loop *scheduler.Loop, cfg Config) []probe {
			s := signal.Combine(signaltest.CountTo(loop, 1, cfg.SlowDelay), signaltest.CountTo(loop, 2, cfg.FastDelay))
			return []probe{expect("combine", s, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 2}})}
		},
	},
	{
		name:        "lift",
		description: "lift(a + b*3)(countTo(2, fast), countTo(2, slow))",
		build: func(loop *scheduler.Loop, cfg Config) []probe {
			f := signal.Lift2(func(a, b int) int { return a + b*3 })
			s := f(signaltest.CountTo(loop, 2, cfg.FastDelay), signaltest.CountTo(loop, 2, cfg.SlowDelay))
			return []probe{expect("lift", s, []int{0, 1, 2, 5, 8})}
		},
	},
	{
		name:        "isolation",
		description: "two subscriptions to one signal observe the full sequence",
		build: func(loop *scheduler.Loop, cfg Config) []probe {
			s := signaltest.CountTo(loop, 2, cfg.SlowDelay)
			return []probe{
				expect("first subscription", s, []int{0, 1, 2}),
				expect("second subscription", s, []int{0, 1, 2}),
			}
		},
	},
}
