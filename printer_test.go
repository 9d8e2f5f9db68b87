package rulsp

import "testing"

func Test_Printer_plain(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{Int(0), "0"},
		{Int(-42), "-42"},
		{Sym("test"), "test"},
		{List(), "()"},
		{List(Int(0), Int(1)), "(0 1)"},
		{List(List(Int(0), Int(1)), Int(2)), "((0 1) 2)"},
		{List(Sym("a"), Nil, Int(3)), "(a nil 3)"},
		{Func("f", func([]Value) (Value, error) { return Nil, nil }), "#builtin_func()"},
		{FuncVal(&Closure{}), "#func()"},
		{FuncVal(&Closure{IsMacro: true}), "#macro()"},
	}
	for _, c := range cases {
		if got := Format(c.v, false); got != c.want {
			t.Fatalf("Format(%#v) = %q, want %q", c.v, got, c.want)
		}
		if got := c.v.String(); got != c.want {
			t.Fatalf("String(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func Test_Printer_tagged(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "Nil()"},
		{Int(42), "Integer(42)"},
		{Sym("sym"), "Symbol(sym)"},
		// The tag wraps the outermost value; elements stay plain.
		{List(Int(1), Int(2), Int(3)), "List(1 2 3)"},
		{List(Sym("a"), List(Int(1))), "List(a (1))"},
		{List(), "List()"},
		{Func("f", func([]Value) (Value, error) { return Nil, nil }), "#builtin_func()"},
		{FuncVal(&Closure{IsMacro: true}), "#macro()"},
	}
	for _, c := range cases {
		if got := Format(c.v, true); got != c.want {
			t.Fatalf("Format(%#v, tagged) = %q, want %q", c.v, got, c.want)
		}
	}
}

func Test_Printer_formatArgs(t *testing.T) {
	args := []Value{Int(1), List(Int(2)), Nil}
	if got := formatArgs(args, false); got != "1 (2) nil" {
		t.Fatalf("formatArgs plain = %q", got)
	}
	if got := formatArgs(args, true); got != "Integer(1) List(2) Nil()" {
		t.Fatalf("formatArgs tagged = %q", got)
	}
	if got := formatArgs(nil, false); got != "" {
		t.Fatalf("formatArgs of no args = %q", got)
	}
}
