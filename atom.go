// atom.go — the runtime value model.
//
// Values form a closed tagged union: nil, integer, symbol, list, host
// function, closure. The tag determines which Go type Value.Data holds
// (see ValueTag). Values are immutable after construction; "modifying" a
// list always builds a new one, so sub-lists can be shared freely.
//
// Application (Apply) lives here as well, because dispatch is by variant:
// host functions call straight into Go, closures build a child frame of
// their captured environment and evaluate their body there.
package rulsp

import "strings"

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNil     ValueTag = iota // nil (no payload)
	VTInt                     // int64
	VTSym                     // string (symbol name)
	VTList                    // []Value
	VTFunc                    // *HostFunc
	VTClosure                 // *Closure
)

// Value is the universal runtime carrier.
//
// Invariants:
//   - When Tag==VTNil, Data is nil. Nil is logically a single value; every
//     construction compares and formats identically.
//   - When Tag==VTList, Data is []Value. Elements are shared references.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Nil is the canonical empty/false value.
var Nil = Value{Tag: VTNil}

// HostFn is the calling signature of a native function exposed to programs.
type HostFn func(args []Value) (Value, error)

// HostFunc wraps a native Go function. The name is kept for diagnostics
// only; host functions never compare equal, not even to themselves.
type HostFunc struct {
	Name string
	Fn   HostFn
}

// Closure is a user-defined function or macro: a body, a parameter spec
// (checked to be a list at application time), and a live reference to the
// environment in effect at definition time. Mutations of that environment
// after definition are visible to the closure.
type Closure struct {
	Params  Value
	Body    Value
	Env     *Env
	IsMacro bool
}

// Int constructs an integer value.
func Int(n int64) Value { return Value{Tag: VTInt, Data: n} }

// Sym constructs a symbol. Any capitalization of "nil" yields the
// canonical Nil value instead of a symbol.
func Sym(name string) Value {
	if strings.EqualFold(name, "nil") {
		return Nil
	}
	return Value{Tag: VTSym, Data: name}
}

// List constructs a list from the given elements (shared, not copied).
func List(items ...Value) Value { return Value{Tag: VTList, Data: items} }

// Func constructs a host-function value.
func Func(name string, fn HostFn) Value {
	return Value{Tag: VTFunc, Data: &HostFunc{Name: name, Fn: fn}}
}

// FuncVal wraps a Closure into a Value.
func FuncVal(cl *Closure) Value { return Value{Tag: VTClosure, Data: cl} }

// String renders the plain (user-facing) representation.
func (v Value) String() string { return Format(v, false) }

// AsInt returns the integer payload or a TypeMismatch error.
func (v Value) AsInt() (int64, error) {
	if v.Tag != VTInt {
		return 0, &TypeMismatchError{Expected: "int", Actual: Format(v, true)}
	}
	return v.Data.(int64), nil
}

// AsList returns the list payload or a TypeMismatch error.
func (v Value) AsList() ([]Value, error) {
	if v.Tag != VTList {
		return nil, &TypeMismatchError{Expected: "list", Actual: Format(v, true)}
	}
	return v.Data.([]Value), nil
}

// AsSym returns the symbol name or a TypeMismatch error.
func (v Value) AsSym() (string, error) {
	if v.Tag != VTSym {
		return "", &TypeMismatchError{Expected: "symbol", Actual: Format(v, true)}
	}
	return v.Data.(string), nil
}

// Equal compares two values. Nil/integer/symbol use payload equality,
// lists compare length then element-wise. Host functions and closures are
// never equal, including to themselves: function identity is not a
// supported comparison.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNil:
		return true
	case VTInt:
		return a.Data.(int64) == b.Data.(int64)
	case VTSym:
		return a.Data.(string) == b.Data.(string)
	case VTList:
		ax := a.Data.([]Value)
		bx := b.Data.([]Value)
		if len(ax) != len(bx) {
			return false
		}
		for i := range ax {
			if !Equal(ax[i], bx[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// safeGet returns args[i] when present, Nil otherwise. Host functions and
// special forms tolerate missing trailing arguments this way.
func safeGet(args []Value, i int) Value {
	if i >= 0 && i < len(args) {
		return args[i]
	}
	return Nil
}

// Apply invokes the value as a function.
//
// Host functions receive args directly. Closures get a fresh child frame
// of their captured environment with parameters bound positionally; a "&"
// marker in the parameter list binds the following symbol to a list of
// all remaining arguments, or to Nil when there are none. Applying any
// other variant fails with NotCallable.
func (v Value) Apply(args []Value) (Value, error) {
	switch v.Tag {
	case VTFunc:
		return v.Data.(*HostFunc).Fn(args)
	case VTClosure:
		cl := v.Data.(*Closure)
		frame, err := cl.bindFrame(args)
		if err != nil {
			return Nil, err
		}
		return Eval(cl.Body, frame)
	default:
		return Nil, &NotCallableError{Target: Format(v, true)}
	}
}

// bindFrame builds the application frame for a closure call.
func (cl *Closure) bindFrame(args []Value) (*Env, error) {
	params, err := cl.Params.AsList()
	if err != nil {
		return nil, err
	}

	frame := NewEnv(cl.Env)
	for i, p := range params {
		name, err := p.AsSym()
		if err != nil {
			return nil, err
		}
		if name != "&" {
			continue
		}
		if i+1 >= len(params) {
			return nil, &InvalidArgumentError{Msg: "& must be followed by a rest parameter"}
		}
		rest, err := params[i+1].AsSym()
		if err != nil {
			return nil, err
		}
		if err := frame.Bind(params[:i], args); err != nil {
			return nil, err
		}
		// Trailing args become a list; zero trailing args bind Nil (not
		// the empty list). Preserved as observed behavior.
		if i < len(args) {
			frame.Set(rest, List(args[i:]...))
		} else {
			frame.Set(rest, Nil)
		}
		return frame, nil
	}

	if err := frame.Bind(params, args); err != nil {
		return nil, err
	}
	return frame, nil
}
