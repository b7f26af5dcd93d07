package sources

import (
	"context"
	"strings"

	"github.com/schmitthub/prompter/internal/logger"
)

// Dispatcher fills Vars from Sources. Every failure degrades to an empty
// (or unchanged) slot; nothing is returned to the caller.
type Dispatcher struct {
	Env     Env
	Runner  Runner
	Options Options
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(env Env, runner Runner, opts Options) *Dispatcher {
	return &Dispatcher{Env: env, Runner: runner, Options: opts}
}

// FillAll runs every source in order against a fresh array and returns it.
// Each source completes before the next one starts.
func (d *Dispatcher) FillAll(ctx context.Context, srcs []Source) Vars {
	vars := Vars{}
	for _, src := range srcs {
		d.Fill(ctx, src, &vars)
	}
	return vars
}

// Fill grows vars to hold src's slots and writes them.
func (d *Dispatcher) Fill(ctx context.Context, src Source, vars *Vars) {
	if src.Slot < 0 {
		logger.Debug().Stringer("source", src).Msg("negative slot, skipping")
		return
	}
	vars.Ensure(src.MaxIndex())
	v := *vars

	switch src.Kind {
	case VersionControl:
		d.fillVersionControl(src.Slot, v)
	case Privilege:
		v[src.Slot] = d.privilege(ctx)
	case Toolchain:
		v[src.Slot] += d.toolchain(ctx)
	case DirectoryEnv:
		v[src.Slot] += d.directoryEnv()
	case KeyAgent:
		v[src.Slot] = d.keyAgent(ctx)
	case ProjectMarker:
		v[src.Slot] = d.projectMarker()
	default:
		logger.Debug().Stringer("source", src).Msg("unknown source kind, skipping")
	}
}

// run executes cmd and reports whether it succeeded.
func (d *Dispatcher) run(ctx context.Context, kind Kind, cmd Command) ([]byte, bool) {
	if cmd.IsZero() || d.Runner == nil {
		return nil, false
	}
	out, err := d.Runner.Run(ctx, cmd)
	if err != nil {
		logger.Debug().Str("source", kind.String()).Err(err).Msg("command failed")
		return nil, false
	}
	return out, true
}

func (d *Dispatcher) privilege(ctx context.Context) string {
	if _, ok := d.run(ctx, Privilege, d.Options.PrivilegeCommand); !ok {
		return ""
	}
	return d.Options.Glyphs.Privilege
}

// toolchain returns the suffix to append: nothing outside a toolchain
// project or when the channel query fails.
func (d *Dispatcher) toolchain(ctx context.Context) string {
	if _, found := FindUpwards(d.Env.fs(), d.Env.Cwd, d.Options.ToolchainMarker); !found {
		return ""
	}
	out, ok := d.run(ctx, Toolchain, d.Options.ToolchainCommand)
	if !ok {
		return ""
	}
	g := d.Options.Glyphs
	return g.Toolchain + d.channelGlyph(ParseChannel(string(out)))
}

func (d *Dispatcher) channelGlyph(ch Channel) string {
	g := d.Options.Glyphs
	switch ch {
	case Stable:
		return g.Stable
	case Beta:
		return g.Beta
	case Nightly:
		return g.Nightly
	default:
		return g.Other
	}
}

func (d *Dispatcher) directoryEnv() string {
	if _, ok := d.Env.Getenv(d.Options.DirectoryEnvVar); !ok {
		return ""
	}
	return d.Options.Glyphs.DirectoryEnv
}

func (d *Dispatcher) keyAgent(ctx context.Context) string {
	if _, ok := d.Env.Getenv(d.Options.KeyEnvVar); !ok {
		return ""
	}
	if _, ok := d.run(ctx, KeyAgent, d.Options.KeyCommand); !ok {
		return ""
	}
	return d.Options.Glyphs.Key
}

func (d *Dispatcher) projectMarker() string {
	if _, found := FindUpwards(d.Env.fs(), d.Env.Cwd, d.Options.ProjectMarker); !found {
		return ""
	}
	return d.Options.Glyphs.Project
}

// Channel is a toolchain release channel.
type Channel int

const (
	OtherChannel Channel = iota
	Stable
	Beta
	Nightly
)

// ParseChannel reads the channel from the first word of a toolchain
// query's output, e.g. "stable-x86_64-unknown-linux-gnu (default)".
func ParseChannel(out string) Channel {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return OtherChannel
	}
	name, _, _ := strings.Cut(fields[0], "-")
	switch name {
	case "stable":
		return Stable
	case "beta":
		return Beta
	case "nightly":
		return Nightly
	default:
		return OtherChannel
	}
}
