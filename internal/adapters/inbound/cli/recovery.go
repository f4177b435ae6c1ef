package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
	"golang.org/x/term"
)

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ConsolePrompter asks the operator how to recover from a rejected request.
// Without an interactive terminal it always aborts.
type ConsolePrompter struct {
	in         *bufio.Reader
	out        io.Writer
	isTerminal func() bool
	logger     *log.Logger
	mu         sync.Mutex
}

// NewConsolePrompter creates a prompter reading answers from in and writing prompts to out.
func NewConsolePrompter(in io.Reader, out io.Writer, isTerminal func() bool, logger *log.Logger) *ConsolePrompter {
	return &ConsolePrompter{
		in:         bufio.NewReader(in),
		out:        out,
		isTerminal: isTerminal,
		logger:     logger,
	}
}

// Decide implements domain.RecoveryDecider.Decide.
func (p *ConsolePrompter) Decide(ctx context.Context, req domain.DispatchRequest, cause *domain.ProviderErr) domain.RecoveryAction {
	if !p.isTerminal() {
		p.logger.Printf("ConsolePrompter: no terminal attached, aborting task=%s operation=%s", req.TaskID, req.Operation)
		return domain.RecoveryAction_Abort
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "\nRequest %s was rejected: %v\n", req.Operation, cause) //nolint:errcheck
	for ctx.Err() == nil {
		fmt.Fprint(p.out, "[r]etry, [s]kip or [a]bort? ") //nolint:errcheck

		line, err := p.in.ReadString('\n')
		if answer := strings.TrimSpace(line); answer != "" {
			action, parseErr := domain.ParseRecoveryAction(answer)
			if parseErr == nil {
				return action
			}
			fmt.Fprintf(p.out, "%v\n", parseErr) //nolint:errcheck
		}
		if err != nil {
			return domain.RecoveryAction_Abort
		}
	}
	return domain.RecoveryAction_Abort
}

// InitConsoleRecovery registers the recovery decider used by CLI commands.
// A configured mode answers without prompting.
type InitConsoleRecovery struct {
	Logger *log.Logger `resolve:""`
	Mode   string      `config:"DISPATCH_RECOVERY_MODE" default:"-"`
	In     io.Reader
	Out    io.Writer
}

// Initialize registers the domain.RecoveryDecider
func (i InitConsoleRecovery) Initialize(ctx context.Context) (context.Context, error) {
	in, out := i.In, i.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	isTerminal := stdinIsTerminal
	if in != os.Stdin {
		isTerminal = func() bool { return true }
	}

	decider, err := usecases.NewRecoveryDecider(i.Mode, NewConsolePrompter(in, out, isTerminal, i.Logger))
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.RecoveryDecider](decider)
	return ctx, nil
}
