package scenario

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/univt/univt/internal/errorList"
	"github.com/univt/univt/univ"
)

func TestChecks(t *testing.T) {
	for _, c := range Checks() {
		t.Run(c.Name, func(t *testing.T) {
			if err := c.Run(); err != nil {
				t.Errorf("Got: check failed: %v. Want: no error.", err)
			}
		})
	}
}

func TestRun(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	err := Run(context.Background(), Options{Readers: 4, Iterations: 200, Logger: logger})
	if err != nil {
		t.Fatalf("Got: Run() returned error: %v. Want: no error.", err)
	}

	var got []log.Level
	for _, e := range hook.AllEntries() {
		got = append(got, e.Level)
	}
	want := make([]log.Level, len(Checks())+1)
	for i := range want {
		want[i] = log.DebugLevel
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Run() logged levels diff (-want,+got):\n%s", diff)
	}
}

func TestRunCanceled(t *testing.T) {
	logger, _ := test.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, Options{Readers: 2, Iterations: 10, Logger: logger})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Got: Run() returned error: %v. Want: %v.", err, context.Canceled)
	}
}

func TestConcurrentReadersCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := concurrentReaders(ctx, 3, 5, univ.Unembed[[]string]); !errors.Is(err, context.Canceled) {
		t.Errorf("Got: concurrentReaders() returned error: %v. Want: %v.", err, context.Canceled)
	}
}

func TestConcurrentReadersFailures(t *testing.T) {
	stale := func(univ.Value) ([]string, bool) { return []string{"stale"}, true }

	err := concurrentReaders(context.Background(), 3, 50, stale)
	var errs errorList.ErrorList
	if !errors.As(err, &errs) {
		t.Fatalf("Got: concurrentReaders() returned error: %v. Want: an ErrorList.", err)
	}
	if got, want := len(errs), 3; got != want {
		t.Errorf("Got: %d failures: %v. Want: %d, one per reader.", got, err, want)
	}
}
