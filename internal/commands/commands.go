package commands

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"
)

const prefix = "cmd "

// ErrNotCommand is returned by Run for lines that do not start with "cmd ".
var ErrNotCommand = errors.New("not a command")

// Command is a subcommand with its own flags. Run is called after the flags parsed and
// reads them through the variables bound on FlagSet.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "set").
// The flag set reports errors instead of exiting.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns the registered subcommands in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Help returns one line per subcommand: name, flags and summary.
func (r *Registry) Help() []string {
	var out []string
	for _, name := range r.Names() {
		c := r.cmds[name]
		line := "cmd " + name
		c.FlagSet.VisitAll(func(f *flag.Flag) {
			line += " -" + f.Name + " <" + f.Name + ">"
		})
		if c.Summary != "" {
			line += "  " + c.Summary
		}
		out = append(out, line)
	}
	return out
}

// Parse interprets line as a terminal line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized and returned with ok true. Double quotes group words with spaces.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	return split(strings.TrimSpace(line[len(prefix):])), true
}

func split(s string) []string {
	var (
		args    []string
		cur     strings.Builder
		quoted  bool
		started bool
	)
	for _, c := range s {
		switch {
		case c == '"':
			quoted = !quoted
			started = true
		case c == ' ' && !quoted:
			if started {
				args = append(args, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(c)
			started = true
		}
	}
	if started {
		args = append(args, cur.String())
	}
	return args
}

// Execute runs the subcommand in args[0] with args[1:] as its flags.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand (try: cmd help)")
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}
	// Flag values outlive a single run; start each one from the defaults.
	cmd.FlagSet.VisitAll(func(f *flag.Flag) { _ = f.Value.Set(f.DefValue) })
	var usage bytes.Buffer
	cmd.FlagSet.SetOutput(&usage)
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return cmd.Run()
}

// Run parses and executes one terminal line.
func (r *Registry) Run(line string) error {
	args, ok := Parse(line)
	if !ok {
		return ErrNotCommand
	}
	return r.Execute(args)
}
