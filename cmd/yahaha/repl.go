package main

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/yahaha-lang/yahaha"
	"github.com/yahaha-lang/yahaha/config"
)

var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
)

// Repl is an interactive Read-Eval-Print Loop over the yahaha core,
// styled after go-mix's repl.Repl: a banner plus a readline-backed input
// loop that keeps one environment alive across lines so declarations
// persist (spec.md §6 new_env/exec, called once per line rather than
// once per program).
type Repl struct {
	cfg *config.Config
}

// NewRepl builds a Repl from the loaded host configuration.
func NewRepl(cfg *config.Config) *Repl {
	return &Repl{cfg: cfg}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.cfg.Line)
	greenColor.Fprintf(w, "%s\n", r.cfg.Banner)
	blueColor.Fprintf(w, "%s\n", r.cfg.Line)
	yellowColor.Fprintln(w, "Version: "+r.cfg.Version+" | Author: "+r.cfg.Author+" | License: "+r.cfg.License)
	blueColor.Fprintf(w, "%s\n", r.cfg.Line)
	cyanColor.Fprintln(w, "Welcome to yahaha!")
	cyanColor.Fprintln(w, "Type D statements terminated by ';' and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.cfg.Line)
}

// Start runs the REPL loop over reader/writer until '.exit', EOF, or a
// readline error. Interactive mode and server mode both call this with
// different reader/writer pairs (stdin/stdout or a net.Conn); file mode
// does not use the REPL.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.cfg.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	env := yahaha.NewEnv()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		rl.SaveHistory(line)

		if !strings.HasSuffix(line, ";") {
			line += ";"
		}
		executeEnv(writer, reader, line, env)
	}
}
