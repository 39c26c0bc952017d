package internal

type exec struct {
	state *interpreterState

	globals *env
	env     *env

	// resolver output: scope distance per variable, assign, this and super node
	locals map[expr]int

	// number of calls in progress
	depth int
}

const maxCallDepth = 10000

func newExec(state *interpreterState) *exec {
	globals := newEnv(nil)
	return &exec{
		state:   state,
		globals: globals,
		env:     globals,
		locals:  make(map[expr]int),
	}
}

// interpret runs the statements, stopping at the first runtime error.
// Returns false if a runtime error was reported.
func (e *exec) interpret(stmts []stmt) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			runErr, isRunErr := r.(*runtimeError)
			if !isRunErr {
				panic(r)
			}
			e.env = e.globals
			e.state.reportRuntime(runErr)
			ok = false
		}
	}()
	for _, s := range stmts {
		e.execute(s)
	}
	return true
}

func (e *exec) execute(s stmt) {
	switch s := s.(type) {
	case *blockStmt:
		e.executeBlock(s.stmts, newEnv(e.env))
	case *classStmt:
		e.executeClass(s)
	case *exprStmt:
		e.evaluate(s.expression)
	case *fnStmt:
		e.env.define(s.name.lexeme, &function{
			declaration: s,
			closure:     e.env,
		})
	case *ifStmt:
		if truthy(e.evaluate(s.condition)) {
			e.execute(s.thenBranch)
		} else if s.elseBranch != nil {
			e.execute(s.elseBranch)
		}
	case *printStmt:
		e.state.printer.Println(stringify(e.evaluate(s.expression)))
	case *returnStmt:
		var value interface{}
		if s.value != nil {
			value = e.evaluate(s.value)
		}
		panic(returnValue{value: value})
	case *varStmt:
		var value interface{}
		if s.initializer != nil {
			value = e.evaluate(s.initializer)
		}
		e.env.define(s.name.lexeme, value)
	case *whileStmt:
		for truthy(e.evaluate(s.condition)) {
			e.execute(s.body)
		}
	}
}

func (e *exec) executeBlock(stmts []stmt, env *env) {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		e.execute(s)
	}
}

func (e *exec) executeClass(s *classStmt) {
	var superclass *class
	if s.superclass != nil {
		sc, isClass := e.evaluate(s.superclass).(*class)
		if !isClass {
			runtimeErr(errExpectedClass, s.superclass.name)
		}
		superclass = sc
	}

	e.env.define(s.name.lexeme, nil)

	if superclass != nil {
		e.env = newEnv(e.env)
		e.env.define("super", superclass)
	}

	methods := make(map[string]*function, len(s.methods))
	for _, method := range s.methods {
		methods[method.name.lexeme] = &function{
			declaration:   method,
			closure:       e.env,
			isInitializer: method.name.lexeme == "init",
		}
	}

	if superclass != nil {
		e.env = e.env.enclosing
	}

	e.env.assign(s.name, &class{
		name:       s.name.lexeme,
		superclass: superclass,
		methods:    methods,
	})
}

func (e *exec) evaluate(ex expr) interface{} {
	switch ex := ex.(type) {
	case *assignExpr:
		value := e.evaluate(ex.value)
		if distance, ok := e.locals[ex]; ok {
			e.env.assignAt(distance, ex.name, value)
		} else {
			e.globals.assign(ex.name, value)
		}
		return value
	case *binaryExpr:
		return e.binary(ex)
	case *callExpr:
		return e.call(ex)
	case *getExpr:
		object, isInstance := e.evaluate(ex.object).(*instance)
		if !isInstance {
			runtimeErr(errOnlyInstanceProps, ex.name)
		}
		return object.get(ex.name)
	case *groupingExpr:
		return e.evaluate(ex.expression)
	case *literalExpr:
		return ex.value
	case *logicalExpr:
		left := e.evaluate(ex.left)
		if ex.operator.token == tkOr {
			if truthy(left) {
				return left
			}
		} else if !truthy(left) {
			return left
		}
		return e.evaluate(ex.right)
	case *setExpr:
		object, isInstance := e.evaluate(ex.object).(*instance)
		if !isInstance {
			runtimeErr(errOnlyInstanceFields, ex.name)
		}
		value := e.evaluate(ex.value)
		object.set(ex.name, value)
		return value
	case *superExpr:
		distance := e.locals[ex]
		superclass := e.env.getAt(distance, "super").(*class)
		// this is always bound one scope inside super
		object := e.env.getAt(distance-1, "this").(*instance)
		method := superclass.findMethod(ex.method.lexeme)
		if method == nil {
			runtimeErr(withDetail(errUndefinedProp, "Undefined property '%s'.", ex.method.lexeme), ex.method)
		}
		return method.bind(object)
	case *thisExpr:
		return e.lookUpVariable(ex.keyword, ex)
	case *unaryExpr:
		right := e.evaluate(ex.right)
		switch ex.operator.token {
		case tkBang:
			return !truthy(right)
		case tkMinus:
			valueNum, ok := right.(float64)
			if !ok {
				runtimeErr(withDetail(errOperandNumber, "Operand of '%s' must be a number.", ex.operator.lexeme), ex.operator)
			}
			return -valueNum
		}
		return nil
	case *variableExpr:
		return e.lookUpVariable(ex.name, ex)
	}
	return nil
}

func (e *exec) lookUpVariable(name *token, ex expr) interface{} {
	if distance, ok := e.locals[ex]; ok {
		return e.env.getAt(distance, name.lexeme)
	}
	return e.globals.get(name)
}

func (e *exec) binary(ex *binaryExpr) interface{} {
	left := e.evaluate(ex.left)
	right := e.evaluate(ex.right)
	switch ex.operator.token {
	case tkEqualEqual:
		return isEqual(left, right)
	case tkBangEqual:
		return !isEqual(left, right)
	case tkGreater:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum > rightNum
	case tkGreaterEqual:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum >= rightNum
	case tkLess:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum < rightNum
	case tkLessEqual:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum <= rightNum
	case tkPlus:
		switch l := left.(type) {
		case float64:
			if r, ok := right.(float64); ok {
				return l + r
			}
		case string:
			if r, ok := right.(string); ok {
				return l + r
			}
		}
		runtimeErr(withDetail(errOperandsAdd, "Operands of '%s' must be two numbers or two strings.", ex.operator.lexeme), ex.operator)
	case tkMinus:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum - rightNum
	case tkSlash:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum / rightNum
	case tkStar:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum * rightNum
	}
	return nil
}

func (e *exec) getNums(ex *binaryExpr, left, right interface{}) (float64, float64) {
	leftNum, leftOk := left.(float64)
	rightNum, rightOk := right.(float64)
	if !leftOk || !rightOk {
		runtimeErr(withDetail(errOperandsNumbers, "Operands of '%s' must be numbers.", ex.operator.lexeme), ex.operator)
	}
	return leftNum, rightNum
}

func (e *exec) call(ex *callExpr) interface{} {
	callee := e.evaluate(ex.callee)
	arguments := make([]interface{}, len(ex.arguments))
	for i := range ex.arguments {
		arguments[i] = e.evaluate(ex.arguments[i])
	}

	fn, isFn := callee.(callable)
	if !isFn {
		runtimeErr(errOnlyCallable, ex.paren)
	}

	if len(arguments) != fn.arity() {
		runtimeErr(withDetail(
			errInvalidNumberArguments,
			"Expected %d arguments but got %d.",
			fn.arity(),
			len(arguments),
		), ex.paren)
	}

	if e.depth >= maxCallDepth {
		runtimeErr(errStackOverflow, ex.paren)
	}
	e.depth++
	defer func() {
		e.depth--
	}()

	return fn.call(e, arguments)
}
