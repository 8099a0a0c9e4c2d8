package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Phase is the top-level game phase.
type Phase int

const (
	PhaseMenu     Phase = iota // Title screen, initial phase
	PhasePlaying               // Simulation running
	PhasePaused                // Simulation frozen
	PhaseGameOver              // Health reached zero
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Command is a discrete request that may change the phase.
type Command int

const (
	CmdNone Command = iota
	CmdStart
	CmdQuit
	CmdPause
	CmdResume
	CmdMenu
	CmdShowHighScore
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdQuit:
		return "quit"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdMenu:
		return "menu"
	case CmdShowHighScore:
		return "show_highscore"
	default:
		return "none"
	}
}

// Effect is the side effect the driver must perform after a transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectReset
	EffectQuit
	EffectToggleHighScore
)

type transitionKey struct {
	from Phase
	cmd  Command
}

type transitionResult struct {
	to     Phase
	effect Effect
}

// transitions lists every defined (phase, command) pair.
var transitions = map[transitionKey]transitionResult{
	{PhaseMenu, CmdStart}:         {PhasePlaying, EffectReset},
	{PhaseMenu, CmdQuit}:          {PhaseMenu, EffectQuit},
	{PhaseMenu, CmdShowHighScore}: {PhaseMenu, EffectToggleHighScore},
	{PhasePlaying, CmdPause}:      {PhasePaused, EffectNone},
	{PhasePlaying, CmdMenu}:       {PhaseMenu, EffectNone},
	{PhasePaused, CmdResume}:      {PhasePlaying, EffectNone},
	{PhasePaused, CmdMenu}:        {PhaseMenu, EffectNone},
	{PhaseGameOver, CmdStart}:     {PhasePlaying, EffectReset},
	{PhaseGameOver, CmdQuit}:      {PhaseGameOver, EffectQuit},
}

// Transition returns the phase reached from `from` by cmd and the effect to
// perform. Undefined pairs leave the phase unchanged with no effect.
func Transition(from Phase, cmd Command) (Phase, Effect) {
	if r, ok := transitions[transitionKey{from, cmd}]; ok {
		return r.to, r.effect
	}
	return from, EffectNone
}

// commandFor maps the discrete events of one frame to at most one command.
// The first matching binding for the phase wins.
func commandFor(phase Phase, in core.InputFrame) Command {
	type binding struct {
		action core.Action
		cmd    Command
	}
	var bindings []binding
	switch phase {
	case PhaseMenu:
		bindings = []binding{
			{core.ActionConfirm1, CmdStart},
			{core.ActionConfirm2, CmdShowHighScore},
			{core.ActionConfirm3, CmdQuit},
			{core.ActionBack, CmdQuit},
		}
	case PhasePlaying:
		bindings = []binding{
			{core.ActionPause, CmdPause},
			{core.ActionBack, CmdMenu},
		}
	case PhasePaused:
		bindings = []binding{
			{core.ActionPause, CmdResume},
			{core.ActionBack, CmdMenu},
		}
	case PhaseGameOver:
		bindings = []binding{
			{core.ActionConfirm1, CmdStart},
			{core.ActionBack, CmdQuit},
		}
	}
	for _, b := range bindings {
		if in.Has(b.action) {
			return b.cmd
		}
	}
	return CmdNone
}
