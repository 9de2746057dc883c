// Command setalg builds two integer sets and applies one set operation to
// them.
//
//	setalg --left 5,3,1 --right 3,4 --op union
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rdeusser/orderedset/logging"
	"github.com/rdeusser/orderedset/set"
)

type options struct {
	left    []int
	right   []int
	op      string
	verbose bool
	noColor bool
}

type mutation func(s *set.OrderedSet[int], other []int) error

type predicate func(s *set.OrderedSet[int], other []int) (bool, error)

var mutations = map[string]mutation{
	"union": func(s *set.OrderedSet[int], other []int) error {
		return s.UnionWith(set.Values(other))
	},
	"intersect": func(s *set.OrderedSet[int], other []int) error {
		return s.IntersectWith(set.Values(other))
	},
	"except": func(s *set.OrderedSet[int], other []int) error {
		return s.ExceptWith(set.Values(other))
	},
	"symmetric-except": func(s *set.OrderedSet[int], other []int) error {
		return s.SymmetricExceptWith(set.Values(other))
	},
}

var predicates = map[string]predicate{
	"subset": func(s *set.OrderedSet[int], other []int) (bool, error) {
		return s.IsSubsetOf(set.Values(other))
	},
	"superset": func(s *set.OrderedSet[int], other []int) (bool, error) {
		return s.IsSupersetOf(set.Values(other))
	},
	"proper-subset": func(s *set.OrderedSet[int], other []int) (bool, error) {
		return s.IsProperSubsetOf(set.Values(other))
	},
	"proper-superset": func(s *set.OrderedSet[int], other []int) (bool, error) {
		return s.IsProperSupersetOf(set.Values(other))
	},
	"overlaps": func(s *set.OrderedSet[int], other []int) (bool, error) {
		return s.Overlaps(set.Values(other))
	},
	"equals": func(s *set.OrderedSet[int], other []int) (bool, error) {
		return s.SetEquals(set.Values(other))
	},
}

func operations() []string {
	names := make([]string, 0, len(mutations)+len(predicates))
	for name := range mutations {
		names = append(names, name)
	}
	for name := range predicates {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options

	flags := flag.NewFlagSet("setalg", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.IntSliceVar(&opts.left, "left", nil, "items of the set to operate on")
	flags.IntSliceVar(&opts.right, "right", nil, "items of the other collection")
	flags.StringVar(&opts.op, "op", "union", "operation: "+strings.Join(operations(), ", "))
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	if err := flags.Parse(args); err != nil {
		return errors.Wrap(err, "parsing flags")
	}

	if opts.noColor {
		color.NoColor = true
	}

	level := zapcore.InfoLevel
	if opts.verbose {
		level = zapcore.DebugLevel
	}

	logger := logging.New(stderr, level).Named("setalg")
	defer logger.Sync() //nolint:errcheck

	s := set.New(opts.left...).WithLogger(logger)
	logger.Debug("built set", zap.Stringer("set", s), zap.Ints("other", opts.right))

	if fn, ok := mutations[opts.op]; ok {
		if err := fn(s, opts.right); err != nil {
			return errors.Wrapf(err, "applying %s", opts.op)
		}

		fmt.Fprintln(stdout, color.CyanString(s.String()))
		return nil
	}

	if fn, ok := predicates[opts.op]; ok {
		result, err := fn(s, opts.right)
		if err != nil {
			return errors.Wrapf(err, "evaluating %s", opts.op)
		}

		if result {
			fmt.Fprintln(stdout, color.GreenString("true"))
		} else {
			fmt.Fprintln(stdout, color.RedString("false"))
		}
		return nil
	}

	return errors.Errorf("unknown operation %q", opts.op)
}
