// printer.go — value rendering.
//
// Two renderings exist: plain for user-facing output ("(1 2 3)", "nil",
// "sym") and tagged for diagnostics ("List(1 2 3)", "Nil()", "Symbol(sym)").
// The tag wraps the outermost value only; list elements always render
// plain. Function-like values have no payload to show and render as
// "#builtin_func()", "#func()" or "#macro()" in both modes.
package rulsp

import (
	"io"
	"os"
	"strconv"
	"strings"
)

// Stdout is the output channel for print/println/print_env. Tests swap it
// for a buffer.
var Stdout io.Writer = os.Stdout

// Format renders v. With tagged=false the rendering is user-facing; with
// tagged=true it is the diagnostic form used in error messages and
// print_env dumps.
func Format(v Value, tagged bool) string {
	switch v.Tag {
	case VTNil:
		if tagged {
			return "Nil()"
		}
		return "nil"
	case VTInt:
		s := strconv.FormatInt(v.Data.(int64), 10)
		if tagged {
			return "Integer(" + s + ")"
		}
		return s
	case VTSym:
		name := v.Data.(string)
		if tagged {
			return "Symbol(" + name + ")"
		}
		return name
	case VTList:
		items := v.Data.([]Value)
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = Format(it, false)
		}
		body := strings.Join(parts, " ")
		if tagged {
			return "List(" + body + ")"
		}
		return "(" + body + ")"
	case VTFunc:
		return "#builtin_func()"
	case VTClosure:
		if v.Data.(*Closure).IsMacro {
			return "#macro()"
		}
		return "#func()"
	default:
		return "#unknown()"
	}
}

// formatArgs joins the renderings of args with single spaces, the layout
// used by the print family.
func formatArgs(args []Value, tagged bool) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Format(a, tagged)
	}
	return strings.Join(parts, " ")
}
