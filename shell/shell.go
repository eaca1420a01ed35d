// Package shell is an interactive console for playing against the engine
// and inspecting its evaluation.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/ingenious/othello/board"
	"github.com/ingenious/othello/bot"
	"github.com/ingenious/othello/config"
	"github.com/ingenious/othello/coordinator"
	"github.com/ingenious/othello/worker"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("sending quit signal")
)

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type ShellController struct {
	l   *readline.Instance
	out io.Writer

	config *config.Config
	nc     bot.Requester

	coord          *coordinator.Coordinator
	autoplayCancel context.CancelFunc
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

// NewShellController sets up a console. Remote workers are used through
// nc if it is not nil.
func NewShellController(cfg *config.Config, nc bot.Requester) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mothello>\033[0m ",
		HistoryFile:     "/tmp/othello-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := newController(cfg, nc, l.Stderr())
	sc.l = l
	return sc
}

func newController(cfg *config.Config, nc bot.Requester, out io.Writer) *ShellController {
	sc := &ShellController{config: cfg, nc: nc, out: out}
	sc.resetGame(cfg.Colour)
	return sc
}

func (sc *ShellController) resetGame(engine board.Colour) {
	units := coordinator.NewUnits(sc.config.Workers, sc.nc, sc.config.WorkerSubject)
	dist := worker.NewDistributor(units, worker.ParamsFromConfig(sc.config))
	sc.coord = coordinator.New(engine, dist)
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: map[string]string{}}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			cmd.options[fields[i][1:]] = fields[i+1]
			i++
			continue
		}
		cmd.args = append(cmd.args, fields[i])
	}
	return cmd, nil
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		sig <- syscall.SIGINT
		return nil, errQuit
	case "help":
		if len(cmd.args) == 0 {
			usage(sc.out)
		} else {
			usageTopic(sc.out, cmd.args[0])
		}
		return nil, nil
	case "new":
		return sc.newGame(cmd)
	case "gen":
		return sc.gen(cmd)
	case "play":
		return sc.play(cmd)
	case "board", "s":
		return sc.show(cmd)
	case "eval":
		return sc.eval(cmd)
	case "legal":
		return sc.legal(cmd)
	case "config":
		return sc.configure(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		return nil, errors.New("unrecognized command: " + cmd.cmd)
	}
}

// Execute runs a single command line.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.standardModeSwitch(line, sig)
	if err != nil {
		if err != errNoData && err != errQuit {
			sc.showError(err)
		}
		return
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

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
		resp, err := sc.standardModeSwitch(line, sig)
		if err == errQuit {
			break
		}
		if err != nil && err != errNoData {
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup stops anything still running in the background.
func (sc *ShellController) Cleanup() {
	if sc.autoplayCancel != nil {
		sc.autoplayCancel()
	}
}
