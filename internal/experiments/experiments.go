// Package experiments holds opt-in behaviour toggles for univt.
//
// Toggles are read once, at program start, from the UNIVT_EXPERIMENT
// environment variable, e.g. UNIVT_EXPERIMENT=shallowcopy.
package experiments

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// EnvVar is the environment variable the flags are read from.
const EnvVar = "UNIVT_EXPERIMENT"

var (
	// ErrInvalidDest is returned by parseFlags when dest is not a non-nil
	// pointer to a struct of boolean flag fields.
	ErrInvalidDest = errors.New("invalid flag struct")
	// ErrInvalidFormat is returned by parseFlags when the raw string can't be
	// parsed.
	ErrInvalidFormat = errors.New("invalid flag string format")
)

// Env contains the flags parsed from UNIVT_EXPERIMENT.
var Env Flags

func init() {
	if err := parseFlags(os.Getenv(EnvVar), &Env); err != nil {
		panic(fmt.Errorf("failed to parse %s flags: %w", EnvVar, err))
	}
}

// Flags contains the supported experiments.
type Flags struct {
	// ShallowCopy makes univ copy values without a Clone method by plain
	// assignment, so slices and maps are shared with the caller.
	ShallowCopy bool `flag:"shallowcopy"`
}

// parseFlags populates the tagged bool fields of dest from raw.
//
// raw is a comma-separated list of `name` or `name=value` entries; a bare name
// means true and surrounding spaces are ignored. The last occurrence of a flag
// wins. Names without a matching `flag:"name"` field are skipped so that
// retired experiments left in a user's environment do no harm.
func parseFlags(raw string, dest any) error {
	ptr := reflect.ValueOf(dest)
	if ptr.Kind() != reflect.Pointer || ptr.Type().Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: must be a pointer to a struct", ErrInvalidDest)
	}
	if ptr.IsNil() {
		return fmt.Errorf("%w: must not be nil", ErrInvalidDest)
	}
	fields := taggedFields(ptr.Elem())

	if strings.TrimSpace(raw) == "" {
		return nil
	}
	for _, entry := range strings.Split(raw, ",") {
		name, value, err := parseEntry(entry)
		if err != nil {
			return err
		}
		field, ok := fields[name]
		if !ok {
			continue
		}
		if field.Kind() != reflect.Bool {
			return fmt.Errorf("%w: flag %q is not a bool field", ErrInvalidDest, name)
		}
		field.SetBool(value)
	}
	return nil
}

func parseEntry(entry string) (name string, value bool, err error) {
	name, raw, hasValue := strings.Cut(entry, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, fmt.Errorf("%w: empty flag name in %q", ErrInvalidFormat, entry)
	}
	if !hasValue {
		return name, true, nil
	}
	raw = strings.TrimSpace(raw)
	value, err = strconv.ParseBool(raw)
	if err != nil {
		return "", false, fmt.Errorf("%w: can't parse %q as boolean for flag %q", ErrInvalidFormat, raw, name)
	}
	return name, value, nil
}

// taggedFields maps `flag` tag values to the fields of struct s.
func taggedFields(s reflect.Value) map[string]reflect.Value {
	t := s.Type()
	fields := make(map[string]reflect.Value, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name, ok := t.Field(i).Tag.Lookup("flag"); ok {
			fields[name] = s.Field(i)
		}
	}
	return fields
}
