package rulsp

import (
	"errors"
	"testing"
)

func Test_Runtime_bootstrap_populates_globals(t *testing.T) {
	env := baseEnv(t)

	// Host function table.
	for _, name := range []string{
		"+", "-", "*", "/", "cons", "list", "list?", "nil?",
		"count", "nth", "rest", "=", "print", "println", "_print", "_println",
	} {
		v, ok := env.Get(name)
		if !ok {
			t.Fatalf("host function %s should be bound", name)
		}
		if v.Tag != VTFunc {
			t.Fatalf("%s should be a host function, got %#v", name, v)
		}
	}

	// Library symbols defined by the core script.
	for _, name := range []string{"first", "second", "inc", "dec", "empty?", "last"} {
		v, ok := env.Get(name)
		if !ok {
			t.Fatalf("library symbol %s should be bound", name)
		}
		if v.Tag != VTClosure {
			t.Fatalf("%s should be a closure, got %#v", name, v)
		}
	}
}

func Test_Runtime_library_symbols_work(t *testing.T) {
	env := baseEnv(t)

	wantEvalPlain(t, env, `(first (list 1 2 3))`, "1")
	wantEvalPlain(t, env, `(second (list 1 2 3))`, "2")
	wantEvalPlain(t, env, `(first (list))`, "nil")
	wantEvalPlain(t, env, `(inc 41)`, "42")
	wantEvalPlain(t, env, `(dec 1)`, "0")
	wantEvalPlain(t, env, `(empty? (list))`, "1")
	wantEvalPlain(t, env, `(empty? (list 1))`, "nil")
	wantEvalPlain(t, env, `(last (list 1 2 3))`, "3")
	wantEvalPlain(t, env, `(last (list))`, "nil")
}

func Test_Runtime_load_script(t *testing.T) {
	env := baseEnv(t)

	if err := LoadScript(env, `(def answer 42) (def q (quote (a b)))`); err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	wantEvalPlain(t, env, `answer`, "42")
	wantEvalPlain(t, env, `q`, "(a b)")
}

func Test_Runtime_load_failures(t *testing.T) {
	env := baseEnv(t)
	var le *LoadError

	// Evaluation failure carries the offending form.
	err := LoadScript(env, `(def ok 1) (boom)`)
	if !errors.As(err, &le) {
		t.Fatalf("runtime failure should be a LoadError, got %v", err)
	}
	if le.Form != "(boom)" {
		t.Fatalf("LoadError.Form = %q, want (boom)", le.Form)
	}
	var undef *UndefinedSymbolError
	if !errors.As(err, &undef) {
		t.Fatalf("LoadError should unwrap to the evaluation error, got %v", err)
	}

	// Forms before the failure still took effect.
	wantEvalPlain(t, env, `ok`, "1")

	// Read failure wraps too, with no form.
	err = LoadScript(env, `(def broken`)
	if !errors.As(err, &le) {
		t.Fatalf("read failure should be a LoadError, got %v", err)
	}
	var re *ReadError
	if !errors.As(err, &re) {
		t.Fatalf("LoadError should unwrap to the ReadError, got %v", err)
	}
}

func Test_Runtime_eval_source(t *testing.T) {
	env := baseEnv(t)

	// Last form's value is returned.
	wantPlain(t, mustEval(t, env, "(def x 2)\n(+ x 3)"), "5")

	// Empty source yields nil.
	v, err := EvalSource("  ; nothing here\n", env)
	if err != nil || v.Tag != VTNil {
		t.Fatalf("empty source = %#v, %v", v, err)
	}

	// Errors come back unwrapped.
	var undef *UndefinedSymbolError
	if _, err := EvalSource(`(nope)`, env); !errors.As(err, &undef) {
		t.Fatalf("EvalSource error should be the bare evaluation error, got %v", err)
	}
}

func Test_Runtime_new_runtime_isolated(t *testing.T) {
	a := baseEnv(t)
	b := baseEnv(t)

	mustEval(t, a, `(def only-here 1)`)
	if _, ok := b.Get("only-here"); ok {
		t.Fatal("runtimes must not share global state")
	}
}
