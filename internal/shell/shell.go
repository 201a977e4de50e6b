// Package shell implements the interactive command loop.
//
// The loop starts in StateAwaitingCommand, runs each recognised command
// synchronously and returns to StateAwaitingCommand. The exit command or the
// end of input moves it to StateTerminated. Operation errors are reported to
// the user and never end the loop.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// State is the dispatcher state.
type State int

const (
	StateAwaitingCommand State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingCommand:
		return "awaiting-command"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Shell is the command dispatcher.
type Shell struct {
	session  *Session
	handlers map[Kind]Handler
	logger   *slog.Logger
	state    State
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(sh *Shell) {
		if logger != nil {
			sh.logger = logger
		}
	}
}

// WithHandler overrides the handler bound to a kind.
func WithHandler(kind Kind, h Handler) Option {
	return func(sh *Shell) {
		sh.handlers[kind] = h
	}
}

// New creates a dispatcher over session.
func New(session *Session, opts ...Option) *Shell {
	sh := &Shell{
		session:  session,
		handlers: DefaultHandlers(),
		logger:   slog.Default(),
		state:    StateAwaitingCommand,
	}
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

// State returns the current dispatcher state.
func (sh *Shell) State() State {
	return sh.state
}

// Run reads and executes commands until exit, end of input or ctx cancellation.
func (sh *Shell) Run(ctx context.Context) error {
	for sh.state != StateTerminated {
		if err := ctx.Err(); err != nil {
			sh.state = StateTerminated
			return err
		}

		sh.printMenu()
		line, err := sh.session.Prompt(msgPromptCommand)
		if err != nil {
			sh.state = StateTerminated
			if errors.Is(err, io.EOF) {
				sh.session.Println()
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		sh.Dispatch(ctx, line)
	}
	return nil
}

// Dispatch runs the command named by input and reports any failure.
func (sh *Shell) Dispatch(ctx context.Context, input string) {
	kind := ParseKind(input)
	h, ok := sh.handlers[kind]
	if !ok {
		sh.logger.Debug("unknown command", "input", input)
		sh.session.Println(msgUnknown)
		return
	}

	sh.logger.Debug("running command", "command", kind.String())
	err := h.Run(ctx, sh.session)
	switch {
	case err == nil:
	case errors.Is(err, errExit):
		sh.state = StateTerminated
	case errors.Is(err, io.EOF):
		sh.state = StateTerminated
		sh.session.Println()
	default:
		sh.logger.Debug("command failed", "command", kind.String(), "error", err)
		sh.session.Println(Describe(err))
	}
}

func (sh *Shell) printMenu() {
	sh.session.Println()
	sh.session.Println("Available commands:")
	for _, k := range menuOrder {
		sh.session.Println(fmt.Sprintf("%s - %s", k, menuHelp[k]))
	}
}
