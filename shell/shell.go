package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lettercover/config"
	"github.com/domino14/lettercover/runner"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format for option")
)

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

type ShellController struct {
	l      *readline.Instance
	config *config.Config
	runner *runner.Runner

	// the pool from the last random draw, for `solve` with no arguments
	lastDraw string
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	r, err := runner.NewRunner(cfg)
	if err != nil {
		return nil, err
	}
	sc := newController(cfg, r)

	prompt := "\033[36mlettercover>\033[0m "
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     filepath.Join(os.TempDir(), "lettercover-readline.tmp"),
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		r.Close()
		return nil, err
	}
	sc.l = l
	return sc, nil
}

func newController(cfg *config.Config, r *runner.Runner) *ShellController {
	return &ShellController{config: cfg, runner: r}
}

// extractFields splits a shell line into a command, its positional
// arguments, and its -key value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 {
			if i+1 >= len(fields) {
				return nil, errWrongOptionSyntax
			}
			key := fields[i][1:]
			options[key] = append(options[key], fields[i+1])
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "quit", "bye":
		sig <- syscall.SIGINT
		return nil, errors.New("sending quit signal")
	default:
		return sc.dispatch(context.Background(), cmd)
	}
}

func (sc *ShellController) dispatch(ctx context.Context, cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "help":
		return sc.help(cmd)
	case "solve":
		return sc.solve(ctx, cmd)
	case "batch":
		return sc.batch(ctx, cmd)
	case "random":
		return sc.random(ctx, cmd)
	case "check":
		return sc.check(cmd)
	case "lengths":
		return sc.lengths(cmd)
	case "set":
		return sc.set(cmd)
	case "history":
		return sc.history(ctx, cmd)
	default:
		log.Info().Msgf("command %v not found", cmd.cmd)
		return nil, fmt.Errorf("command %v not found", cmd.cmd)
	}
}

// Execute runs a single command line, printing its output to stdout.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.standardModeSwitch(line, sig)
	if err != nil {
		showMessage("Error: "+err.Error(), os.Stdout)
		return
	}
	if resp != nil {
		showMessage(resp.message, os.Stdout)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		resp, err := sc.standardModeSwitch(line, sig)
		if err != nil {
			showMessage("Error: "+err.Error(), sc.l.Stderr())
			continue
		}
		if resp != nil {
			showMessage(resp.message, sc.l.Stderr())
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	if sc.l != nil {
		sc.l.Close()
	}
	if err := sc.runner.Close(); err != nil {
		log.Err(err).Msg("runner-close-failed")
	}
}

func setLogLevel(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
