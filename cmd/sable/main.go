package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/sable-lang/sable/engine"
)

func main() {
	var expr string
	var disasm bool
	var verbose bool

	flag.StringVar(&expr, "e", "", "expression to evaluate")
	flag.BoolVar(&disasm, "d", false, "Disassemble, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	eng := engine.NewEngine()
	eng.Verbose = verbose

	if len(expr) != 0 {
		run(eng, "-e", expr, disasm)
		return
	}

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			repl(eng, disasm)
			return
		}

		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("stdin: %v", err)
		}
		run(eng, "stdin", src, disasm)
		return
	}

	for _, name := range flag.Args() {
		src, err := os.ReadFile(name)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
		run(eng, name, src, disasm)
	}
}

// run evaluates (or just disassembles) one script, fatally on error.
func run(eng *engine.Engine, filename string, src any, disasm bool) {
	if disasm {
		prog, err := eng.Compile(filename, src)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(prog)
		return
	}

	result, err := eng.Eval(filename, src)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result)
}

// repl reads lines from the terminal; bindings persist between lines.
func repl(eng *engine.Engine, disasm bool) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		if len(strings.TrimSpace(line)) != 0 {
			if disasm {
				prog, err := eng.Compile("repl", line)
				if err != nil {
					fmt.Println(err)
				} else {
					fmt.Print(prog)
				}
			} else {
				result, err := eng.Eval("repl", line)
				if err != nil {
					fmt.Println(err)
				} else {
					fmt.Println(result)
				}
			}
		}
		fmt.Print("> ")
	}
	fmt.Println()
}
