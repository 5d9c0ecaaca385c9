package forth

// machine executes expanded tokens against a working stack. It halts by
// panicking with a haltError, recovered by Interp.Eval.
type machine struct {
	*logging
	dict   dictionary
	strict bool
	stack  []int32
	seg    int
}

func (m *machine) halt(kind ErrorKind, text string) {
	err := &Error{Kind: kind, Token: text, Segment: m.seg}
	m.logf("!", "halt %v", err)
	panic(haltError{err})
}

func (m *machine) need(n int, tok token) {
	if len(m.stack) < n {
		m.halt(StackUnderflow, tok.text)
	}
}

func (m *machine) push(val int32) {
	m.stack = append(m.stack, val)
}

func (m *machine) pop() (val int32) {
	i := len(m.stack) - 1
	val, m.stack = m.stack[i], m.stack[:i]
	return val
}

func (m *machine) run(toks []token) {
	for i := 0; i < len(toks); i++ {
		switch tok := toks[i]; tok.kind {
		case literalToken:
			m.push(tok.val)
		case opToken:
			m.arith(tok)
		case stackToken:
			m.shuffle(tok)
		case defineToken:
			i = m.define(toks, i)
			continue
		case endToken, identToken:
			m.halt(UnknownWord, tok.text)
		}
		m.logf(">", "%v -- %v", toks[i].text, m.stack)
	}
}

// arith pops a then b and pushes b OP a.
func (m *machine) arith(tok token) {
	m.need(2, tok)
	a, b := m.pop(), m.pop()
	switch tok.prim {
	case primAdd:
		m.push(b + a)
	case primSub:
		m.push(b - a)
	case primMul:
		m.push(b * a)
	case primDiv:
		if a == 0 {
			m.halt(DivisionByZero, tok.text)
		}
		m.push(b / a)
	}
}

func (m *machine) shuffle(tok token) {
	switch tok.prim {
	case primDup:
		m.need(1, tok)
		m.push(m.stack[len(m.stack)-1])
	case primDrop:
		m.need(1, tok)
		m.pop()
	case primSwap:
		m.need(2, tok)
		n := len(m.stack)
		m.stack[n-1], m.stack[n-2] = m.stack[n-2], m.stack[n-1]
	case primOver:
		m.need(2, tok)
		m.push(m.stack[len(m.stack)-2])
	}
}

// define captures ": NAME body... ;" starting at toks[i], returning the
// index of the closing ";".
func (m *machine) define(toks []token, i int) int {
	i++
	if i >= len(toks) {
		m.halt(InvalidWord, toks[i-1].text)
	}
	name := toks[i]
	if !validName(name.text) {
		m.halt(InvalidWord, name.text)
	}
	if m.strict && (name.kind == opToken || name.kind == stackToken) {
		m.halt(NotPrimitiveOperator, name.text)
	}

	body := []string{}
	for i++; i < len(toks); i++ {
		switch tok := toks[i]; tok.kind {
		case endToken:
			m.dict.define(name.text, body)
			m.logf(":", "define %v %v", name.text, body)
			return i
		case defineToken:
			m.halt(InvalidWord, tok.text)
		default:
			body = append(body, tok.text)
		}
	}
	m.halt(InvalidWord, name.text)
	return i
}
