package internal

// parseAbort unwinds the current declaration after a syntax error has been
// reported. declaration recovers it and resynchronizes.
type parseAbort struct{}

// parser stores parser data
type parser struct {
	current int

	state *interpreterState
}

const maxFunctionParams = 255

func (p *parser) parse() {
	for !p.isAtEnd() {
		// A declaration that failed to parse yields nil and is left out
		if st := p.declaration(); st != nil {
			p.state.stmts = append(p.state.stmts, st)
		}
	}
}

func (p *parser) declaration() (s stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseAbort); !ok {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	if p.match(tkClass) {
		return p.class()
	}
	if p.match(tkFun) {
		return p.fn("function")
	}
	if p.match(tkVar) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *parser) class() stmt {
	name := p.consume(tkIdentifier, errExpectedClassName)

	var superclass *variableExpr
	if p.match(tkLess) {
		superclass = &variableExpr{
			name: p.consume(tkIdentifier, errExpectedSuperclassName),
		}
	}

	p.consume(tkLeftBrace, errExpectedClassBody)

	var methods []*fnStmt
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		methods = append(methods, p.fn("method"))
	}

	p.consume(tkRightBrace, errUnclosedClass)

	return &classStmt{
		name:       name,
		superclass: superclass,
		methods:    methods,
	}
}

func (p *parser) fn(kind string) *fnStmt {
	nameErr := errExpectedFunctionName
	if kind == "method" {
		nameErr = errExpectedMethodName
	}
	name := p.consume(tkIdentifier, nameErr)

	p.consume(tkLeftParen, errExpectedParenAfterName)

	var params []*token
	if !p.check(tkRightParen) {
		for {
			if len(params) >= maxFunctionParams {
				p.state.tokenError(errMaxParameters, p.peek())
			}
			params = append(params, p.consume(tkIdentifier, errExpectedParamName))
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, errUnclosedParams)

	p.consume(tkLeftBrace, errExpectedFunctionBody)
	body := p.block()

	return &fnStmt{
		name:   name,
		params: params,
		body:   body,
	}
}

func (p *parser) varDecl() stmt {
	name := p.consume(tkIdentifier, errExpectedIdentifier)

	var init expr
	if p.match(tkEqual) {
		init = p.expression()
	}

	p.consume(tkSemicolon, errExpectedSemicolonVar)
	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() stmt {
	if p.match(tkFor) {
		return p.forLoop()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkPrint) {
		return p.printStmt()
	}
	if p.match(tkReturn) {
		return p.ret()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkLeftBrace) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

// forLoop desugars a for loop into its while form:
//
//	{ init; while (cond) { body; inc; } }
func (p *parser) forLoop() stmt {
	p.consume(tkLeftParen, errExpectedParenAfterFor)

	var init stmt
	if p.match(tkSemicolon) {
		init = nil
	} else if p.match(tkVar) {
		init = p.varDecl()
	} else {
		init = p.expressionStmt()
	}

	var cond expr
	if !p.check(tkSemicolon) {
		cond = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolonCond)

	var inc expr
	if !p.check(tkRightParen) {
		inc = p.expression()
	}
	p.consume(tkRightParen, errExpectedParenAfterClauses)

	body := p.statement()

	if inc != nil {
		body = &blockStmt{stmts: []stmt{body, &exprStmt{expression: inc}}}
	}
	if cond == nil {
		cond = &literalExpr{value: true}
	}
	body = &whileStmt{condition: cond, body: body}
	if init != nil {
		body = &blockStmt{stmts: []stmt{init, body}}
	}
	return body
}

func (p *parser) ifStmt() stmt {
	p.consume(tkLeftParen, errExpectedParenAfterIf)
	cond := p.expression()
	p.consume(tkRightParen, errExpectedParenAfterCond)

	st := &ifStmt{
		condition:  cond,
		thenBranch: p.statement(),
	}
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}
	return st
}

func (p *parser) printStmt() stmt {
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolonValue)
	return &printStmt{expression: value}
}

func (p *parser) ret() stmt {
	keyword := p.previous()
	var value expr
	if !p.check(tkSemicolon) {
		value = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolonReturn)
	return &returnStmt{
		keyword: keyword,
		value:   value,
	}
}

func (p *parser) while() stmt {
	p.consume(tkLeftParen, errExpectedParenAfterWhile)
	cond := p.expression()
	p.consume(tkRightParen, errExpectedParenAfterCond)
	return &whileStmt{
		condition: cond,
		body:      p.statement(),
	}
}

func (p *parser) block() []stmt {
	stmts := make([]stmt, 0)
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		if st := p.declaration(); st != nil {
			stmts = append(stmts, st)
		}
	}
	p.consume(tkRightBrace, errUnclosedBlock)
	return stmts
}

func (p *parser) expressionStmt() stmt {
	expr := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolonExpr)
	return &exprStmt{expression: expr}
}

func (p *parser) expression() expr {
	return p.assignment()
}

func (p *parser) assignment() expr {
	expr := p.or()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *variableExpr:
			return &assignExpr{
				name:  target.name,
				value: value,
			}
		case *getExpr:
			return &setExpr{
				object: target.object,
				name:   target.name,
				value:  value,
			}
		}

		// Not fatal, parsing goes on with the left hand side
		p.state.tokenError(errInvalidAssignment, equal)
	}
	return expr
}

func (p *parser) or() expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() expr {
	expr := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() expr {
	expr := p.comparison()
	for p.match(tkEqualEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() expr {
	expr := p.addition()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.addition()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) addition() expr {
	expr := p.multiplication()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.multiplication()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() expr {
	expr := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.call()
}

func (p *parser) call() expr {
	expr := p.primary()
	for {
		if p.match(tkLeftParen) {
			expr = p.finishCall(expr)
		} else if p.match(tkDot) {
			name := p.consume(tkIdentifier, errExpectedProp)
			expr = &getExpr{
				object: expr,
				name:   name,
			}
		} else {
			break
		}
	}
	return expr
}

func (p *parser) finishCall(callee expr) expr {
	arguments := make([]expr, 0)
	if !p.check(tkRightParen) {
		for {
			if len(arguments) >= maxFunctionParams {
				p.state.tokenError(errMaxArguments, p.peek())
			}
			arguments = append(arguments, p.expression())
			if !p.match(tkComma) {
				break
			}
		}
	}
	paren := p.consume(tkRightParen, errUnclosedArguments)
	return &callExpr{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

func (p *parser) primary() expr {
	if p.match(tkFalse) {
		return &literalExpr{value: false}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: true}
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}
	}
	if p.match(tkNumber, tkString) {
		return &literalExpr{value: p.previous().literal}
	}
	if p.match(tkSuper) {
		keyword := p.previous()
		p.consume(tkDot, errExpectedDot)
		return &superExpr{
			keyword: keyword,
			method:  p.consume(tkIdentifier, errExpectedSuperMethod),
		}
	}
	if p.match(tkThis) {
		return &thisExpr{keyword: p.previous()}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: expr}
	}

	p.fatal(errExpectedExpr, p.peek())
	return nil
}

func (p *parser) fatal(err error, tk *token) {
	p.state.tokenError(err, tk)
	panic(parseAbort{})
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}
	p.fatal(err, p.peek())
	return nil
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, tk := range tokens {
		if p.check(tk) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().token == tk
}

func (p *parser) peek() *token {
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

// synchronize discards tokens until the next statement boundary: right
// after a ';' or right before a keyword that starts a statement.
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().token == tkSemicolon {
			return
		}
		switch p.peek().token {
		case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		}
		p.advance()
	}
}
