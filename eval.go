// eval.go — the recursive evaluate/apply engine.
//
// Eval takes an already-parsed expression tree (built from Nil/Int/Sym/
// List values, see reader.go for the collaborator that produces them) and
// an environment, and reduces it to a value or an error.
//
// Dispatch:
//   - non-lists: symbols resolve through the environment chain, everything
//     else is self-evaluating;
//   - the empty list is self-evaluating;
//   - a non-empty list is either one of the four special forms (quote,
//     def, fn*, print_env) when its head is the matching symbol, or a
//     function application: all elements evaluate left to right, the first
//     result is applied to the rest.
//
// Evaluation is plain recursive descent. Deep user recursion rides the Go
// stack; that is accepted here, not remedied.
package rulsp

import "fmt"

// Eval evaluates expr in env. Any error produced by a sub-expression
// aborts the whole evaluation immediately; there is no partial result.
func Eval(expr Value, env *Env) (Value, error) {
	switch expr.Tag {
	case VTList:
		return evalList(expr, env)
	case VTSym:
		name := expr.Data.(string)
		if v, ok := env.Get(name); ok {
			return v, nil
		}
		return Nil, &UndefinedSymbolError{Name: name}
	default:
		return expr, nil
	}
}

func evalList(expr Value, env *Env) (Value, error) {
	items := expr.Data.([]Value)
	if len(items) == 0 {
		return expr, nil
	}

	if items[0].Tag == VTSym {
		switch items[0].Data.(string) {
		case "quote":
			// Second element, untouched. Contents are never evaluated.
			return safeGet(items, 1), nil
		case "def":
			return evalDef(items, env)
		case "fn*":
			return evalFn(items, env)
		case "print_env":
			fmt.Fprintf(Stdout, "Env { data: %s }\n", env.dump(true))
			return Nil, nil
		}
	}

	callee, err := Eval(items[0], env)
	if err != nil {
		return Nil, err
	}

	// Macro path: raw argument forms, result re-evaluated at the call site.
	if cl, ok := callee.Data.(*Closure); ok && cl.IsMacro {
		expanded, err := callee.Apply(items[1:])
		if err != nil {
			return Nil, err
		}
		return Eval(expanded, env)
	}

	args := make([]Value, 0, len(items)-1)
	for _, it := range items[1:] {
		v, err := Eval(it, env)
		if err != nil {
			return Nil, err
		}
		args = append(args, v)
	}

	if callee.Tag != VTFunc && callee.Tag != VTClosure {
		// Report the operator as written, not its evaluated result.
		return Nil, &NotCallableError{Target: Format(items[0], false)}
	}
	return callee.Apply(args)
}

// evalDef binds (def name form) in the current env. The right-hand side
// evaluates in a transient child frame; only the finished value lands in
// the current (outer) environment. Returns Nil.
func evalDef(items []Value, env *Env) (Value, error) {
	nameV := safeGet(items, 1)
	if nameV.Tag != VTSym {
		return Nil, &TypeMismatchError{
			Expected: "symbol as name of def",
			Actual:   Format(nameV, true),
		}
	}
	val, err := Eval(safeGet(items, 2), NewEnv(env))
	if err != nil {
		return Nil, err
	}
	env.Set(nameV.Data.(string), val)
	return Nil, nil
}

// evalFn builds a closure from (fn* params body). The current environment
// is captured by reference; the body is not evaluated until application,
// and the parameter spec is checked to be a list only then.
func evalFn(items []Value, env *Env) (Value, error) {
	return FuncVal(&Closure{
		Params: safeGet(items, 1),
		Body:   safeGet(items, 2),
		Env:    env,
	}), nil
}
