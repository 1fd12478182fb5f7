// cmd/sentra/main.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"sentra/internal/compiler"
	"sentra/internal/errors"
	"sentra/internal/lexer"
	"sentra/internal/parser"
	"sentra/internal/vm"
)

const version = "1.0.0"

var commandAliases = map[string]string{
	"r": "run",
	"i": "repl",
	"c": "check",
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		showUsage()
		return
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	switch cmd {
	case "--help", "-h", "help":
		showUsage()
	case "--version", "-v", "version":
		fmt.Printf("sentra %s\n", version)
	case "run":
		if len(args) < 2 {
			fatal("run requires a file argument")
		}
		runFile(args[1])
	case "check":
		if len(args) < 2 {
			fatal("check requires a file argument")
		}
		checkFile(args[1])
	case "repl":
		startREPL()
	default:
		fatal(fmt.Sprintf("unknown command: %s", cmd))
	}
}

func showUsage() {
	fmt.Println("sentra - a small scripting language runtime")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sentra run <file.sn>    compile and execute a script")
	fmt.Println("  sentra check <file.sn>  parse and compile without executing")
	fmt.Println("  sentra repl             start an interactive session")
	fmt.Println("  sentra version          print the runtime version")
}

func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "sentra: %s\n", msg)
	os.Exit(1)
}

// compileSource runs a source file through the front end and the
// hoisting compiler, recovering parser/compiler panics into a returned
// error the way the teacher's run command does.
func compileSource(source, path string) (stmts []parser.Stmt, c *compiler.HoistingCompiler, err error) {
	scanner := lexer.NewScanner(source)
	tokens := scanner.ScanTokens()
	p := parser.NewParserWithSource(tokens, source, path)

	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(*errors.SentraError); ok {
				err = se
			} else if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()

	stmts = p.Parse()
	stmts = compiler.FoldConstantRanges(stmts)
	c = compiler.NewHoistingCompilerWithDebug(path)
	c.SetContracts(compiler.ParseContracts(source))
	return stmts, c, nil
}

func runFile(filename string) {
	source, err := os.ReadFile(filename)
	if err != nil {
		fatal(fmt.Sprintf("could not read file: %v", err))
	}

	stmts, c, err := compileSource(string(source), filename)
	if err != nil {
		fatal(err.Error())
	}

	chunk := c.CompileWithHoisting(stmts)
	machine := vm.NewVM(chunk)
	machine.SetFilePath(filename)

	if _, err := machine.Run(); err != nil {
		fatal(fmt.Sprintf("runtime error: %v", err))
	}
}

func checkFile(filename string) {
	source, err := os.ReadFile(filename)
	if err != nil {
		fatal(fmt.Sprintf("could not read file: %v", err))
	}

	stmts, c, err := compileSource(string(source), filename)
	if err != nil {
		fatal(err.Error())
	}

	c.CompileWithHoisting(stmts)
	fmt.Printf("%s: ok (%d top-level statements)\n", filename, len(stmts))
}

// startREPL runs a line-at-a-time read-eval-print loop. Each line is
// compiled and executed in its own VM sharing nothing with the previous
// line, matching the teacher's stateless-script execution model: the
// prompt exists for quick expression checks, not for building up a
// session's worth of state.
func startREPL() {
	prompt := "sentra> "
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		prompt = ""
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("sentra %s — type an expression, Ctrl-D to exit\n", version)
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}
		evalLine(line)
	}
}

func evalLine(line string) {
	stmts, c, err := compileSource(line, "<repl>")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	chunk := c.CompileWithHoisting(stmts)
	machine := vm.NewVM(chunk)

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", r)
		}
	}()

	if result, err := machine.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	} else if result != nil {
		vm.PrintValue(result)
	}
}
