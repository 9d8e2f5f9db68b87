// reader.go — source text → expression trees.
//
// The reader is the parsing collaborator the evaluator expects: it turns
// UTF-8 source into trees built exclusively from Nil/Int/Sym/List values.
// The evaluator itself never depends on it; eval.go consumes whatever
// conforming tree it is handed.
//
// Grammar is minimal: parenthesized lists, decimal integers (optional
// leading minus), symbols, ";" line comments. Commas count as whitespace.
package rulsp

import (
	"fmt"
	"strconv"
)

// ReadError reports a tokenization or structural failure. Line and Col
// are 1-based.
type ReadError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

type token struct {
	text string
	line int
	col  int
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',', '(', ')', ';':
		return true
	}
	return false
}

func tokenize(src string) []token {
	toks := make([]token, 0, 16)
	line, col := 1, 1

	advance := func(c byte) {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	for pos := 0; pos < len(src); {
		c := src[pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ',':
			advance(c)
			pos++
		case c == ';':
			for pos < len(src) && src[pos] != '\n' {
				advance(src[pos])
				pos++
			}
		case c == '(' || c == ')':
			toks = append(toks, token{text: string(c), line: line, col: col})
			advance(c)
			pos++
		default:
			start, startCol := pos, col
			for pos < len(src) && !isDelim(src[pos]) {
				advance(src[pos])
				pos++
			}
			toks = append(toks, token{text: src[start:pos], line: line, col: startCol})
		}
	}
	return toks
}

type reader struct {
	toks []token
	pos  int
}

func (r *reader) peek() (token, bool) {
	if r.pos >= len(r.toks) {
		return token{}, false
	}
	return r.toks[r.pos], true
}

func (r *reader) next() (token, bool) {
	t, ok := r.peek()
	if ok {
		r.pos++
	}
	return t, ok
}

func (r *reader) readForm() (Value, error) {
	t, ok := r.next()
	if !ok {
		return Nil, &ReadError{Line: 1, Col: 1, Msg: "unexpected end of input"}
	}
	switch t.text {
	case "(":
		return r.readList(t)
	case ")":
		return Nil, &ReadError{Line: t.line, Col: t.col, Msg: "unexpected ')'"}
	default:
		return readAtom(t), nil
	}
}

func (r *reader) readList(open token) (Value, error) {
	items := []Value{}
	for {
		t, ok := r.peek()
		if !ok {
			return Nil, &ReadError{Line: open.line, Col: open.col, Msg: "unclosed '('"}
		}
		if t.text == ")" {
			r.pos++
			return List(items...), nil
		}
		item, err := r.readForm()
		if err != nil {
			return Nil, err
		}
		items = append(items, item)
	}
}

// readAtom classifies a token: integers parse to Int, everything else is
// a symbol (Sym folds "nil" to the canonical Nil).
func readAtom(t token) Value {
	if n, err := strconv.ParseInt(t.text, 10, 64); err == nil {
		return Int(n)
	}
	return Sym(t.text)
}

// ReadStr reads the first form in src.
func ReadStr(src string) (Value, error) {
	r := &reader{toks: tokenize(src)}
	return r.readForm()
}

// ReadAll reads every top-level form in src, in order.
func ReadAll(src string) ([]Value, error) {
	r := &reader{toks: tokenize(src)}
	forms := []Value{}
	for {
		if _, ok := r.peek(); !ok {
			return forms, nil
		}
		form, err := r.readForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
}
