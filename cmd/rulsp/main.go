package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/birkenfeld/rulsp"
)

const appName = "rulsp"

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl())
	}

	switch os.Args[1] {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl())
	case "version":
		fmt.Println(rulsp.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`rulsp %s

Usage:
  %s run <file>    Run a script.
  %s repl          Start the REPL (default with no arguments).
  %s version       Print the version.

Config is read from ~/.rulsp.yaml when present (prompt, history, color,
preload scripts).
`, rulsp.Version, appName, appName, appName)
}

// newRuntime builds the global environment and applies configured preload
// scripts. Any failure here is fatal: the process must not continue with
// a partially-initialized environment.
func newRuntime(cfg config) (*rulsp.Env, error) {
	env, err := rulsp.NewRuntime()
	if err != nil {
		return nil, err
	}
	for _, path := range cfg.Preload {
		src, err := os.ReadFile(expandHome(path))
		if err != nil {
			return nil, fmt.Errorf("preload %s: %w", path, err)
		}
		if err := rulsp.LoadScript(env, string(src)); err != nil {
			return nil, fmt.Errorf("preload %s: %w", path, err)
		}
	}
	return env, nil
}

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file>\n", appName)
		return 2
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}

	cfg := loadConfig()
	env, err := newRuntime(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	if _, err := rulsp.EvalSource(string(src), env); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

func cmdRepl() int {
	cfg := loadConfig()
	fmt.Printf("rulsp %s REPL\nCtrl+C cancels input, Ctrl+D exits.\n", rulsp.Version)

	env, err := newRuntime(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(cfg, err.Error(), red))
		return 1
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := expandHome(cfg.HistoryFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		code, ok := readForm(ln, cfg.Prompt)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(code) == "" {
			continue
		}

		v, err := rulsp.EvalSource(code, env)
		if err != nil {
			fmt.Fprintln(os.Stderr, paint(cfg, err.Error(), red))
			continue
		}
		fmt.Println(paint(cfg, rulsp.Format(v, false), blue))
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readForm keeps prompting while the accumulated input is an incomplete
// form (open parenthesis), so multi-line entry works.
func readForm(ln *liner.State, prompt string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = "... "
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := rulsp.ReadAll(src); err == nil || !isIncomplete(err) {
			return src, true
		}
	}
}

func isIncomplete(err error) bool {
	var re *rulsp.ReadError
	return errors.As(err, &re) && strings.Contains(re.Msg, "unclosed")
}

func paint(cfg config, s string, color func(string) string) string {
	if !cfg.Color {
		return s
	}
	return color(s)
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}
