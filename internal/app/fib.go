// internal/app/fib.go
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"biofx-core/fib"
	"biofx/internal/cmdutil"
)

// Accepted ranges for the fib command.
const (
	MinGenerations = 1
	MaxGenerations = 40
	MinLitter      = 1
	MaxLitter      = 5
)

// FibOptions configures Fib.
type FibOptions struct {
	Generations int
	Litter      int
	OutDir      string
}

// SolutionFileName is written into OutDir.
const SolutionFileName = "solution.txt"

// Fib prints the rabbit pair count after the given generations and writes it
// to OutDir/solution.txt.
func Fib(env Env, o FibOptions) (uint64, error) {
	if o.Generations < MinGenerations || o.Generations > MaxGenerations {
		return 0, cmdutil.Usagef("generations %q must be between %d and %d", strconv.Itoa(o.Generations), MinGenerations, MaxGenerations)
	}
	if o.Litter < MinLitter || o.Litter > MaxLitter {
		return 0, cmdutil.Usagef("litter %q must be between %d and %d", strconv.Itoa(o.Litter), MinLitter, MaxLitter)
	}
	if o.OutDir == "" {
		return 0, cmdutil.Usagef("--out-dir must not be empty")
	}
	n, err := fib.Rabbits(o.Generations, o.Litter)
	if err != nil {
		return 0, cmdutil.UsageError(err)
	}
	if err := os.MkdirAll(o.OutDir, 0o755); err != nil {
		return 0, cmdutil.OutputError(err)
	}
	out := strconv.FormatUint(n, 10)
	if err := writeFile(filepath.Join(o.OutDir, SolutionFileName), func(f *os.File) error {
		_, err := io.WriteString(f, out)
		return err
	}); err != nil {
		return 0, err
	}
	env.logger().Debug("solution written", "dir", o.OutDir, "generations", o.Generations, "litter", o.Litter)

	err = env.emit(func(w io.Writer) error {
		_, err := fmt.Fprintln(w, out)
		return err
	})
	return n, err
}
