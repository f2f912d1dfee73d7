package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sirupsen/logrus"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/scheduler"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/signal"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/signal/signaltest"
)

var ErrUnknownScenario = errors.New("unknown scenario")

// probe reports whether a recorded signal produced what was expected.
type probe func() error

// MismatchError describes a signal whose recorded sequence differs from the
// expected one.
type MismatchError struct {
	Label    string
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s, diff %s", e.Label, e.Expected, e.Actual, e.Diff())
}

// Diff renders the character difference between the expected and actual
// sequences, deletions as [-x-] and insertions as {+x+}.
func (e *MismatchError) Diff() string {
	dmp := diffmatchpatch.New()
	var b strings.Builder
	for _, d := range dmp.DiffMain(e.Expected, e.Actual, false) {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// expect subscribes to s right away and checks the recorded values when the
// returned probe is called.
func expect[T any](label string, s *signal.Signal[T], expected []T) probe {
	r := signaltest.Record(s)
	return func() error {
		defer r.Dispose()
		if r.Equal(expected) {
			return nil
		}
		return &MismatchError{
			Label:    label,
			Expected: fmt.Sprint(expected),
			Actual:   fmt.Sprint(r.Values()),
		}
	}
}

func selectScenarios(all []scenario, names []string) ([]scenario, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]scenario, len(all))
	for _, sc := range all {
		byName[sc.name] = sc
	}
	selected := make([]scenario, 0, len(names))
	for _, name := range names {
		sc, ok := byName[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownScenario, "%q", name)
		}
		selected = append(selected, sc)
	}
	return selected, nil
}

// verify runs every scenario on its own loop and collects all failures.
func verify(ctx context.Context, all []scenario, names []string, cfg Config, log *logrus.Logger) error {
	selected, err := selectScenarios(all, names)
	if err != nil {
		return err
	}

	var result *multierror.Error
	for _, sc := range selected {
		entry := log.WithField("scenario", sc.name)
		opts := []scheduler.Option{scheduler.WithLogger(log), scheduler.WithName(sc.name)}
		if !cfg.Realtime {
			opts = append(opts, scheduler.WithVirtualTime(scheduler.Epoch))
		}
		loop := scheduler.New(opts...)

		probes := sc.build(loop, cfg)
		if err := loop.Run(ctx); err != nil {
			entry.WithError(err).Error("interrupted")
			result = multierror.Append(result, errors.Wrapf(err, "scenario %s", sc.name))
			continue
		}

		failed := false
		for _, p := range probes {
			if err := p(); err != nil {
				failed = true
				result = multierror.Append(result, errors.Wrapf(err, "scenario %s", sc.name))
			}
		}
		if failed {
			entry.Warn("failed")
		} else {
			entry.WithField("probes", len(probes)).Info("passed")
		}
	}
	return result.ErrorOrNil()
}
