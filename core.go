// core.go — the host function table.
//
// These are the natives installed into the root environment before the
// bootstrap script runs. Arithmetic is a left fold over integers; list
// helpers share element references instead of copying; predicates return
// Integer(1) for true and Nil for false. The print family writes to
// Stdout and returns its first argument unchanged.
package rulsp

import "fmt"

// registerCore installs the fixed host function table into env.
func registerCore(env *Env) {
	natives := []struct {
		name string
		fn   HostFn
	}{
		{"print", hostPrint},
		{"println", hostPrintln},
		{"_print", hostPrintTagged},
		{"_println", hostPrintlnTagged},
		{"+", hostAdd},
		{"-", hostSub},
		{"*", hostMul},
		{"/", hostDiv},
		{"cons", hostCons},
		{"list", hostList},
		{"list?", hostIsList},
		{"nil?", hostIsNil},
		{"nth", hostNth},
		{"rest", hostRest},
		{"count", hostCount},
		{"=", hostEq},
	}
	for _, n := range natives {
		env.Set(n.name, Func(n.name, n.fn))
	}
}

// intFoldOp folds f over the integer arguments. No arguments yield the
// fold's empty value; a single argument is returned unchanged.
func intFoldOp(f func(acc, v int64) int64, empty int64, args []Value) (Value, error) {
	if len(args) == 0 {
		return Int(empty), nil
	}
	acc, err := args[0].AsInt()
	if err != nil {
		return Nil, err
	}
	for _, a := range args[1:] {
		v, err := a.AsInt()
		if err != nil {
			return Nil, err
		}
		acc = f(acc, v)
	}
	return Int(acc), nil
}

func hostAdd(args []Value) (Value, error) {
	return intFoldOp(func(acc, v int64) int64 { return acc + v }, 0, args)
}

func hostSub(args []Value) (Value, error) {
	return intFoldOp(func(acc, v int64) int64 { return acc - v }, 0, args)
}

func hostMul(args []Value) (Value, error) {
	return intFoldOp(func(acc, v int64) int64 { return acc * v }, 1, args)
}

func hostDiv(args []Value) (Value, error) {
	if len(args) == 0 {
		return Int(1), nil
	}
	acc, err := args[0].AsInt()
	if err != nil {
		return Nil, err
	}
	for _, a := range args[1:] {
		v, err := a.AsInt()
		if err != nil {
			return Nil, err
		}
		if v == 0 {
			return Nil, &InvalidArgumentError{Msg: "division by zero"}
		}
		acc /= v
	}
	return Int(acc), nil
}

// hostCons prepends its first argument to the list given second.
func hostCons(args []Value) (Value, error) {
	tail, err := safeGet(args, 1).AsList()
	if err != nil {
		return Nil, err
	}
	out := make([]Value, 0, len(tail)+1)
	out = append(out, safeGet(args, 0))
	out = append(out, tail...)
	return List(out...), nil
}

func hostList(args []Value) (Value, error) {
	return List(args...), nil
}

func hostIsList(args []Value) (Value, error) {
	if safeGet(args, 0).Tag == VTList {
		return Int(1), nil
	}
	return Nil, nil
}

func hostIsNil(args []Value) (Value, error) {
	if safeGet(args, 0).Tag == VTNil {
		return Int(1), nil
	}
	return Nil, nil
}

func hostCount(args []Value) (Value, error) {
	seq, err := safeGet(args, 0).AsList()
	if err != nil {
		return Nil, err
	}
	return Int(int64(len(seq))), nil
}

// hostNth is positional access: a non-integer or out-of-range index
// yields Nil, not an error. A non-list subject is still a type error.
func hostNth(args []Value) (Value, error) {
	seq, err := safeGet(args, 0).AsList()
	if err != nil {
		return Nil, err
	}
	idx := safeGet(args, 1)
	if idx.Tag != VTInt {
		return Nil, nil
	}
	n := idx.Data.(int64)
	if n < 0 || n >= int64(len(seq)) {
		return Nil, nil
	}
	return seq[n], nil
}

// hostRest is the tail of a list; the tail of the empty list is the empty
// list, and a non-list argument yields Nil.
func hostRest(args []Value) (Value, error) {
	seq, err := safeGet(args, 0).AsList()
	if err != nil {
		return Nil, nil
	}
	if len(seq) == 0 {
		return List(), nil
	}
	return List(seq[1:]...), nil
}

// hostEq chains pairwise equality across all arguments. Zero or one
// argument is trivially true; the first adjacent mismatch makes the whole
// comparison Nil.
func hostEq(args []Value) (Value, error) {
	out := Int(1)
	for i := 0; i+1 < len(args); i++ {
		if !Equal(args[i], args[i+1]) {
			out = Nil
		}
	}
	return out, nil
}

func hostPrint(args []Value) (Value, error) {
	fmt.Fprint(Stdout, formatArgs(args, false))
	return safeGet(args, 0), nil
}

func hostPrintln(args []Value) (Value, error) {
	fmt.Fprintln(Stdout, formatArgs(args, false))
	return safeGet(args, 0), nil
}

func hostPrintTagged(args []Value) (Value, error) {
	fmt.Fprint(Stdout, formatArgs(args, true))
	return safeGet(args, 0), nil
}

func hostPrintlnTagged(args []Value) (Value, error) {
	fmt.Fprintln(Stdout, formatArgs(args, true))
	return safeGet(args, 0), nil
}
