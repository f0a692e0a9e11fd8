// Package execute runs plan commands against the filesystem under a
// command-name allowlist. Commands come from model output and are
// treated as untrusted input throughout.
package execute

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
)

// allowlist is the fixed set of command names permitted to run.
var allowlist = map[string]bool{
	"mkdir": true,
	"cp":    true,
}

// Runner executes command strings sequentially inside Dir. Processes
// are invoked with an argv list, never through a shell, so quoting in
// the command string cannot smuggle metacharacters past the allowlist.
type Runner struct {
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a Runner rooted at sourceDir.
func NewRunner(sourceDir string) *Runner {
	return &Runner{Dir: sourceDir, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes commands in order. Disallowed command names and path
// arguments escaping Dir are skipped with a warning; the first command
// that fails to start or exits non-zero stops the batch. Effects of
// earlier commands are not rolled back.
func (r *Runner) Run(ctx context.Context, commands []string) error {
	for _, command := range commands {
		argv, err := shlex.Split(command)
		if err != nil {
			fmt.Fprintf(r.Stderr, "warning: skipping unparseable command %q: %v\n", command, err)
			continue
		}
		if len(argv) == 0 {
			continue
		}
		if !allowlist[argv[0]] {
			fmt.Fprintf(r.Stderr, "warning: skipping disallowed command %q\n", argv[0])
			continue
		}
		if escaped, arg := r.escapesDir(argv[1:]); escaped {
			fmt.Fprintf(r.Stderr, "warning: skipping command with path %q outside source directory\n", arg)
			continue
		}

		fmt.Fprintf(r.Stdout, "running: %s\n", command)
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		cmd.Dir = r.Dir
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("command %q failed: %w", command, err)
		}
	}
	return nil
}

// escapesDir reports whether any path argument resolves outside the
// runner's directory. Flag arguments are not paths and are ignored.
func (r *Runner) escapesDir(args []string) (bool, string) {
	root, err := filepath.Abs(r.Dir)
	if err != nil {
		return true, r.Dir
	}

	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		resolved := arg
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(root, resolved)
		}
		resolved = filepath.Clean(resolved)

		rel, err := filepath.Rel(root, resolved)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true, arg
		}
	}
	return false, ""
}
