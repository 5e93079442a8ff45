package eval

// maxDepth bounds both stacks, mirroring the source's fixed 64-entry
// capacity for non-pathological inputs; well past that, an input is
// almost certainly a runaway nesting rather than legitimate structure.
const maxDepth = 64

// machine holds all per-call state for one Evaluate invocation. Nothing
// here survives past run() returning.
type machine struct {
	src string
	i   int
	cb  Callback

	state     pstate
	lastValue int64
	lastIdent string // valid while state.kind == kIdent

	valueStack []int64
	opStack    []frame
	callStack  []*callFrame

	scanningArgs bool
	skip         int // nesting depth of short-circuited (discarded) subexpressions
}

func newMachine(src string, cb Callback) *machine {
	return &machine{
		src:        src,
		cb:         cb,
		state:      start(),
		valueStack: make([]int64, 0, 8),
		opStack:    make([]frame, 0, 8),
	}
}

func (m *machine) resolveBare(name string) (int64, error) {
	if m.cb == nil {
		return 0, &foldErr{diagNullFunction}
	}
	if m.skip > 0 {
		return 0, nil
	}
	return m.cb(name, nil, 0), nil
}

func (m *machine) resolveCall(name string, args []int64) (int64, error) {
	if m.cb == nil {
		return 0, &foldErr{diagNullFunction}
	}
	if m.skip > 0 {
		return 0, nil
	}
	return m.cb(name, args, len(args)), nil
}

func (m *machine) resolveAssign(name string, value int64) (int64, error) {
	if m.cb == nil {
		return 0, &foldErr{diagNullFunction}
	}
	if m.skip > 0 {
		return 0, nil
	}
	return m.cb(name, []int64{value}, -1), nil
}

// run is the main dispatch loop: classify the next character under the
// current state and either extend a token, transition state (pushing a
// resume frame), or fold and transition. It mirrors the source's three
// sequential admissibility checks (CAN_LITERAL, CAN_STATEMENT,
// AFTER_LITERAL) rather than a single exhaustive switch, since a given
// state can legitimately fall through more than one of them.
func (m *machine) run() (int64, string) {
	for {
		m.skipWhitespace()

		if m.atEnd() {
			return m.finish()
		}

		if len(m.opStack) > maxDepth || len(m.valueStack) > maxDepth {
			return Sentinel, diagTooDeeplyNested
		}

		ch := m.peek()

		if m.state.canLiteral() {
			if matched, diag := m.tryLiteralStart(ch); matched {
				if diag != "" {
					return Sentinel, diag
				}
				continue
			}
		}

		if m.state.canStatement() && ch == ';' {
			if diag := m.handleSemicolon(); diag != "" {
				return Sentinel, diag
			}
			continue
		}

		if m.state.afterLiteral() {
			if matched, diag := m.tryAfterLiteral(ch); matched {
				if diag != "" {
					return Sentinel, diag
				}
				continue
			}
		}

		if m.state.kind == kCall && ch == ')' {
			if diag := m.closeEmptyCall(); diag != "" {
				return Sentinel, diag
			}
			continue
		}

		return Sentinel, diagSyntaxError
	}
}

// tryLiteralStart handles the CAN_LITERAL branch: identifiers, hex and
// decimal literals, unary operators, and "(". Returns matched=false if ch
// doesn't begin any of these, so run can fall through to the other
// branches.
func (m *machine) tryLiteralStart(ch byte) (matched bool, diag string) {
	switch {
	case isAlpha(ch):
		name := m.scanIdentifier()
		m.lastIdent = name
		m.pushResume(m.state)
		m.state = identState()
		return true, ""

	case ch == '0' && (m.peekAt(1) == 'x' || m.peekAt(1) == 'X'):
		m.lastValue = m.scanHex()
		m.pushResume(m.state)
		m.state = numState()
		return true, ""

	case isDigit(ch):
		m.lastValue = m.scanDecimal()
		m.pushResume(m.state)
		m.state = numState()
		return true, ""

	case isUnaryStart(ch):
		op := m.scanOperator()
		switch op {
		case '+':
			op = opUnaryPlus
		case '-':
			op = opUnaryMinus
		}
		m.pushResume(m.state)
		m.state = unOp(op)
		return true, ""

	case ch == '(':
		m.pushResume(m.state)
		m.pushFlag(m.scanningArgs)
		m.scanningArgs = false
		m.state = parenState()
		m.i++
		return true, ""
	}
	return false, ""
}

// tryAfterLiteral handles the AFTER_LITERAL branch: argument separators,
// closing parens, binary operators (including the assignment special
// case), and opening a call's argument list.
func (m *machine) tryAfterLiteral(ch byte) (matched bool, diag string) {
	switch {
	case ch == ',' && m.scanningArgs:
		return true, m.handleComma()

	case ch == ')':
		return true, m.handleCloseParen()

	case m.state.kind == kIdent && ch == '(':
		m.openCall()
		return true, ""

	case isBinOpStart(ch):
		return true, m.shiftBinary()
	}
	return false, ""
}

// handleSemicolon folds everything down to the enclosing barrier,
// discards the folded value (lastValue already holds the statement's
// result), and resets state to START — or, inside a call's argument
// list, back to CALL. See DESIGN.md for the nested-statements-in-call
// caveat this preserves from the source.
func (m *machine) handleSemicolon() string {
	if err := m.fold(0, 0); err != nil {
		return err.(*foldErr).diag
	}

	if m.state.kind != kStart && m.state.kind != kCall {
		if len(m.opStack) == 0 {
			return diagIncomplete
		}
		m.popFrame()
	}

	if m.scanningArgs {
		m.state = callState()
	} else {
		m.state = start()
	}
	m.i++
	return ""
}

// handleComma folds the current argument expression, pushes it, and
// bumps the enclosing call's argument counter.
func (m *machine) handleComma() string {
	if err := m.fold(0, 0); err != nil {
		return err.(*foldErr).diag
	}

	top := m.topFrame()
	if top.kind != fResume || top.resume.kind != kCall {
		return diagBadComma
	}
	m.popFrame()

	cur := m.currentCall()
	if cur == nil {
		return diagBadComma
	}
	cur.argCount++
	m.pushValue(m.lastValue)
	m.state = callState()
	m.i++
	return ""
}

// handleCloseParen closes either a grouping "(" or a call's argument
// list, per the top of opStack.
func (m *machine) handleCloseParen() string {
	if err := m.fold(0, 0); err != nil {
		return err.(*foldErr).diag
	}

	top := m.topFrame()
	switch {
	case top.kind == fResume && top.resume.kind == kParen:
		m.popFrame()
		flagFrame := m.popFrame()
		m.scanningArgs = flagFrame.flag
		m.i++
		return ""

	case top.kind == fResume && top.resume.kind == kCall && m.scanningArgs:
		return m.closeCall()

	default:
		return diagUnexpectedParen
	}
}

// closeCall finalizes a call with at least one argument: pushes the last
// argument (already folded by handleCloseParen), reads the full argument vector off
// valueStack, invokes the callback, and restores the enclosing scope.
func (m *machine) closeCall() string {
	m.popFrame() // the kCall barrier

	call := m.callStack[len(m.callStack)-1]
	m.callStack = m.callStack[:len(m.callStack)-1]

	call.argCount++
	m.pushValue(m.lastValue)

	args := m.valueStack[len(m.valueStack)-call.argCount:]
	argsCopy := append([]int64(nil), args...)
	m.valueStack = m.valueStack[:len(m.valueStack)-call.argCount]

	m.scanningArgs = call.savedScanningArgs

	v, err := m.resolveCall(call.name, argsCopy)
	if err != nil {
		return err.(*foldErr).diag
	}
	m.lastValue = v
	m.state = numState()
	m.i++
	return ""
}

// closeEmptyCall handles "ident()" — a call with no arguments, reached
// directly from state CALL rather than through AFTER_LITERAL.
func (m *machine) closeEmptyCall() string {
	if len(m.callStack) == 0 {
		return diagUnexpectedParen
	}

	call := m.callStack[len(m.callStack)-1]
	m.callStack = m.callStack[:len(m.callStack)-1]
	m.scanningArgs = call.savedScanningArgs

	v, err := m.resolveCall(call.name, nil)
	if err != nil {
		return err.(*foldErr).diag
	}
	m.lastValue = v
	m.state = numState()
	m.i++
	return ""
}

// openCall transitions "ident(" into CALL, pushing the call's metadata
// onto callStack.
func (m *machine) openCall() {
	// No resume barrier is pushed onto opStack here: as in the source, the
	// CALL marker only appears on opStack once the first argument's
	// literal scan pushes the (then-current) CALL state as its resume
	// point. A call with no arguments at all therefore never grows
	// opStack — see closeEmptyCall.
	m.callStack = append(m.callStack, &callFrame{
		name:              m.lastIdent,
		savedScanningArgs: m.scanningArgs,
	})
	m.scanningArgs = true
	m.state = callState()
	m.i++
}

// shiftBinary lexes a binary operator (or recognizes the assignment
// special case immediately after a bare identifier), folds any
// higher-or-equal-priority pending operators first, then shifts the new
// operator as a resume frame.
func (m *machine) shiftBinary() string {
	op := m.scanOperator()

	if op == opAssign && m.state.kind == kIdent {
		m.pushIdent(m.lastIdent)
		m.state = unOp(opAssign)
		return ""
	}

	if err := m.fold(priorityOf(op), op); err != nil {
		return err.(*foldErr).diag
	}

	if op == opAnd && m.lastValue == 0 {
		m.skip++
	} else if op == opOr && m.lastValue != 0 {
		m.skip++
	}

	m.pushValue(m.lastValue)
	m.state = binOp(op)
	return ""
}

// finish is reached at end of input: fold everything down to START and
// return the last statement's value, or report an incomplete expression
// if operators remain unresolved.
func (m *machine) finish() (int64, string) {
	if m.state.kind == kStart {
		return m.lastValue, ""
	}

	// Ending after an operator, an open "(", or an open call leaves an
	// operand that was never supplied.
	if !m.state.afterLiteral() {
		return Sentinel, diagIncomplete
	}

	if err := m.fold(0, 0); err != nil {
		return Sentinel, err.(*foldErr).diag
	}

	// Exactly one barrier frame legitimately survives a full fold: the
	// START resume that the very first literal scan pushed. Anything
	// beyond that means a delimiter was never closed.
	if len(m.opStack) > 1 {
		return Sentinel, diagIncomplete
	}
	if len(m.opStack) == 1 {
		m.popFrame()
	}

	return m.lastValue, ""
}
