package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

const (
	prompt         = "adoc > "
	continuePrompt = "   ... "
)

// Intp is our interpreter object. It collects markup lines until it is
// told to convert them.
type Intp struct {
	repl   *readline.Instance
	job    *job
	buffer []string
	runs   int
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if quit := intp.Execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Execute handles a single input line. It returns true if the user wants
// to quit.
func (intp *Intp) Execute(line string) bool {
	switch cmd := strings.TrimSpace(line); cmd {
	case ":quit", ":q":
		return true
	case ":go":
		intp.convert()
	case ":clear":
		intp.reset()
		pterm.Info.Println("buffer cleared")
	case ":help":
		pterm.Info.Println(":go converts, :clear discards the input, :quit leaves")
	default:
		intp.buffer = append(intp.buffer, line)
		intp.repl.SetPrompt(continuePrompt)
	}
	return false
}

func (intp *Intp) convert() {
	if len(intp.buffer) == 0 {
		pterm.Info.Println("nothing to convert")
		return
	}
	intp.runs++
	text := strings.Join(intp.buffer, "\n")
	tracer().Debugf("converting %d lines", len(intp.buffer))
	if err := intp.job.run(fmt.Sprintf("<input %d>", intp.runs), text); err != nil {
		tracer().Infof("conversion failed: %v", err)
	}
	intp.reset()
}

func (intp *Intp) reset() {
	intp.buffer = intp.buffer[:0]
	intp.repl.SetPrompt(prompt)
}
