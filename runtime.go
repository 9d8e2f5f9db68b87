// runtime.go — explicit runtime construction and script loading.
//
// Bootstrap is a plain function, not process-global state: callers decide
// when to build an environment and what to load into it. NewRuntime is
// the canonical sequence — host functions first, then the embedded core
// script — and refuses to hand back a partially-initialized environment.
package rulsp

// NewRuntime returns the global environment: a root frame populated with
// the host function table and the core library. Any failure while
// evaluating the core script is returned as a *LoadError; the environment
// must not be used in that case.
func NewRuntime() (*Env, error) {
	env := NewEnv(nil)
	registerCore(env)
	if err := LoadScript(env, coreScript); err != nil {
		return nil, err
	}
	return env, nil
}

// LoadScript reads src and evaluates every top-level form against env, in
// order. The first failure aborts the load and is wrapped in a *LoadError
// carrying the offending form.
func LoadScript(env *Env, src string) error {
	forms, err := ReadAll(src)
	if err != nil {
		return &LoadError{Err: err}
	}
	for _, form := range forms {
		if _, err := Eval(form, env); err != nil {
			return &LoadError{Form: Format(form, false), Err: err}
		}
	}
	return nil
}

// EvalSource reads src and evaluates its forms against env, returning the
// value of the last one. An empty source yields Nil. This is the REPL and
// script entry point; errors come back unwrapped.
func EvalSource(src string, env *Env) (Value, error) {
	forms, err := ReadAll(src)
	if err != nil {
		return Nil, err
	}
	out := Nil
	for _, form := range forms {
		out, err = Eval(form, env)
		if err != nil {
			return Nil, err
		}
	}
	return out, nil
}
