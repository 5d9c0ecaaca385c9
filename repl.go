package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/jcorbin/wordforth/forth"
)

const (
	replPrompt = "forth> "
	morePrompt = "  ...> "
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  ok",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// runREPL reads lines from a terminal until EOF or ".quit", evaluating each
// into the session.
func runREPL(ctx context.Context, sess *session, cfg Config) error {
	initDisplay()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     cfg.History,
		InterruptPrompt: "^C",
		EOFPrompt:       "bye",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	repl := replLines{
		sess: sess,
		dump: sessionDumper{os.Stdout},
		ok:   func(mess string) { pterm.Info.Println(mess) },
		fail: func(err error) { pterm.Error.Println(err.Error()) },
	}
	for ctx.Err() == nil {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			rl.SetPrompt(repl.interrupt())
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		prompt, quit := repl.line(line)
		if quit {
			return nil
		}
		rl.SetPrompt(prompt)
	}
	return ctx.Err()
}

// replLines handles REPL input one line at a time, gathering definitions
// that span lines. Outside a pending definition the meta commands ".stack"
// and ".words" show the session and ".quit" ends it.
type replLines struct {
	sess    *session
	dump    sessionDumper
	ok      func(mess string)
	fail    func(err error)
	pending strings.Builder
}

// line handles one line, returning the prompt for the next one.
func (repl *replLines) line(line string) (prompt string, quit bool) {
	if repl.pending.Len() == 0 {
		switch strings.TrimSpace(line) {
		case "":
			return replPrompt, false
		case ".quit":
			return replPrompt, true
		case ".stack":
			repl.dump.dumpStack(repl.sess.Stack())
			return replPrompt, false
		case ".words":
			repl.dump.dumpWords(repl.sess.Words())
			return replPrompt, false
		}
	} else {
		repl.pending.WriteByte('\n')
	}

	repl.pending.WriteString(line)
	if forth.Unterminated(repl.pending.String()) {
		return morePrompt, false
	}
	text := repl.pending.String()
	repl.pending.Reset()

	if err := repl.sess.eval(text); err != nil {
		repl.fail(err)
	} else {
		repl.ok(formatStack(repl.sess.Stack()))
	}
	return replPrompt, false
}

// interrupt drops any pending definition.
func (repl *replLines) interrupt() string {
	repl.pending.Reset()
	return replPrompt
}
