// Package parser wraps the external parselog tool behind a narrow interface.
// The tool owns all log-decoding logic; this package only knows how to invoke
// it and how to classify what it printed.  Handlers depend on the LogParser
// interface so they can be tested with canned output instead of a subprocess.
package parser

import (
    "bytes"
    "context"
    "errors"
    "fmt"
    "os/exec"
    "strconv"
    "time"
)

// LogParser produces the raw stdout of one parse run for a log identifier.
type LogParser interface {
    // ParseLog runs the tool for the given id and returns everything it
    // wrote to stdout.  An error means the run itself could not complete;
    // a failed parse is reported through the output (see IsFailure).
    ParseLog(ctx context.Context, id int) (string, error)
}

// Command invokes the external tool as a one-shot subprocess, passing the
// JSON-output flag and the identifier as its two arguments.
type Command struct {
    Bin     string        // path to the tool executable
    Flag    string        // flag requesting JSON output (e.g. "--json")
    Timeout time.Duration // per-invocation deadline; 0 leaves the run unbounded
}

// NewCommand returns a Command adapter for the given tool binary.
func NewCommand(bin, flag string, timeout time.Duration) *Command {
    return &Command{Bin: bin, Flag: flag, Timeout: timeout}
}

// ParseLog spawns the tool and captures its stdout.  The tool's exit status
// is not consulted: it signals parse failures through its output, so a
// non-zero exit after the process ran is still a completed invocation and
// whatever was printed is returned as-is.  Only failing to run the process
// at all (missing binary, exceeded deadline) yields an error.
func (p *Command) ParseLog(ctx context.Context, id int) (string, error) {
    if p.Timeout > 0 {
        var cancel context.CancelFunc
        ctx, cancel = context.WithTimeout(ctx, p.Timeout)
        defer cancel()
    }

    cmd := exec.CommandContext(ctx, p.Bin, p.Flag, strconv.Itoa(id))
    var stdout bytes.Buffer
    cmd.Stdout = &stdout

    if err := cmd.Run(); err != nil {
        var exitErr *exec.ExitError
        if !errors.As(err, &exitErr) {
            // The process never ran to completion on its own terms.
            return "", fmt.Errorf("run %s: %w", p.Bin, err)
        }
        if ctx.Err() != nil {
            return "", fmt.Errorf("run %s: %w", p.Bin, ctx.Err())
        }
    }
    return stdout.String(), nil
}
