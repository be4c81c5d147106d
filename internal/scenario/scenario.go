// Package scenario exercises the univ container end to end: the reference
// int/string scenario, the container properties and concurrent readers of a
// shared Value.
package scenario

import (
	"context"
	"fmt"
	"slices"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/univt/univt/internal/errorList"
	"github.com/univt/univt/univ"
)

// maxErrors limits how many failures Run reports.
const maxErrors = 20

// Options control a Run.
type Options struct {
	// Readers is the number of goroutines unembedding one shared Value.
	// Zero skips the concurrent check.
	Readers int
	// Iterations is the number of unembeds done by each reader.
	Iterations int
	// Logger receives progress messages; log.StandardLogger() if nil.
	Logger *log.Logger
}

// Check is a single named property of the container.
type Check struct {
	Name string
	Run  func() error
}

// Run executes all checks, then the concurrent reader check, and returns
// every failure as a single error.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	var errs errorList.ErrorList
	for _, c := range Checks() {
		if err := ctx.Err(); err != nil {
			return errs.Append(err).ErrOrNil()
		}
		if err := c.Run(); err != nil {
			logger.Warningf("Check %q failed: %v", c.Name, err)
			errs = errs.Append(fmt.Errorf("%s: %w", c.Name, err))
			continue
		}
		logger.Debugf("Check %q passed.", c.Name)
	}

	if opts.Readers > 0 {
		if err := concurrentReaders(ctx, opts.Readers, opts.Iterations, univ.Unembed[[]string]); err != nil {
			logger.Warningf("Concurrent readers failed: %v", err)
			errs = errs.Append(err)
		} else {
			logger.Debugf("%d concurrent readers did %d unembeds each.", opts.Readers, opts.Iterations)
		}
	}

	return errs.Trim(maxErrors).ErrOrNil()
}

// celsius shares its underlying type with int, yet is a distinct type.
type celsius int

// Checks returns the property checks in the order Run executes them.
func Checks() []Check {
	ofInt, toInt := univ.MakeCodec[int]()
	_, toInt2 := univ.MakeCodec[int]()
	ofString, toString := univ.MakeCodec[string]()

	r := ofInt(13)
	s := ofString("foo")

	return []Check{
		{"int/same codec", func() error { return present[int](toInt(r))(13) }},
		{"int/other codec for int", func() error { return present[int](toInt2(r))(13) }},
		{"int/string codec", func() error { return absent[string](toString(r)) }},
		{"string/int codec", func() error { return absent[int](toInt(s)) }},
		{"string/same codec", func() error { return present[string](toString(s))("foo") }},
		{"named type/underlying type", func() error {
			if err := absent[celsius](univ.Unembed[celsius](univ.Embed(21))); err != nil {
				return err
			}
			return absent[int](univ.Unembed[int](univ.Embed(celsius(21))))
		}},
		{"embed twice", func() error {
			a, b := ofInt(7), ofInt(7)
			if err := present[int](toInt(a))(7); err != nil {
				return err
			}
			return present[int](toInt2(b))(7)
		}},
		{"source untouched", func() error {
			src := []string{"x", "y"}
			v := univ.Embed(src)
			src[0] = "changed"
			got, ok := univ.Unembed[[]string](v)
			if !ok || !slices.Equal(got, []string{"x", "y"}) {
				return fmt.Errorf("got %q, %t; want [x y], true", got, ok)
			}
			return nil
		}},
		{"empty value", func() error { return absent[int](toInt(univ.Value{})) }},
	}
}

func present[T comparable](got T, ok bool) func(want T) error {
	return func(want T) error {
		if !ok || got != want {
			return fmt.Errorf("got %v, %t; want %v, true", got, ok, want)
		}
		return nil
	}
}

func absent[T any](got T, ok bool) error {
	if ok {
		return fmt.Errorf("got %v, true; want no value", got)
	}
	return nil
}

// concurrentReaders unembeds one shared Value from several goroutines, each
// scribbling over the copy it gets back. Every reader reports each distinct
// failure once; only cancellation stops the readers early.
func concurrentReaders(ctx context.Context, readers, iterations int, read func(univ.Value) ([]string, bool)) error {
	want := []string{"a", "b", "c"}
	shared := univ.Embed(want)

	var (
		mu   sync.Mutex
		errs errorList.ErrorList
	)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < readers; i++ {
		g.Go(func() error {
			var failures errorList.ErrorList
			defer func() {
				mu.Lock()
				errs = errs.Append(failures)
				mu.Unlock()
			}()
			for n := 0; n < iterations; n++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				got, ok := read(shared)
				if !ok || !slices.Equal(got, want) {
					failures = failures.AppendDistinct(fmt.Errorf("reader %d: got %q, %t; want %q, true", i, got, ok, want))
					continue
				}
				got[0] = fmt.Sprint(i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs = errs.Append(err)
	}
	return errs.ErrOrNil()
}
