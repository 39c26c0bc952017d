package internal

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// resolver computes, for every variable reference and assignment, how many
// scopes separate it from its declaration. Globals are not tracked: a
// reference missing from locals is looked up by name at run time.
type resolver struct {
	// name -> defined; false between declare and define
	scopes []map[string]bool

	currentFunction functionType
	currentClass    classType

	locals map[expr]int
	state  *interpreterState
}

func newResolver(state *interpreterState, locals map[expr]int) *resolver {
	return &resolver{
		scopes: make([]map[string]bool, 0),
		locals: locals,
		state:  state,
	}
}

func (r *resolver) resolve(stmts []stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s stmt) {
	switch s := s.(type) {
	case *blockStmt:
		r.beginScope()
		r.resolve(s.stmts)
		r.endScope()
	case *classStmt:
		r.resolveClass(s)
	case *exprStmt:
		r.resolveExpr(s.expression)
	case *fnStmt:
		r.declare(s.name)
		r.define(s.name)
		r.resolveFunction(s, fnFunction)
	case *ifStmt:
		r.resolveExpr(s.condition)
		r.resolveStmt(s.thenBranch)
		if s.elseBranch != nil {
			r.resolveStmt(s.elseBranch)
		}
	case *printStmt:
		r.resolveExpr(s.expression)
	case *returnStmt:
		if r.currentFunction == fnNone {
			r.state.tokenError(errTopLevelReturn, s.keyword)
		}
		if s.value != nil {
			if r.currentFunction == fnInitializer {
				r.state.tokenError(errInitializerReturn, s.keyword)
			}
			r.resolveExpr(s.value)
		}
	case *varStmt:
		r.declare(s.name)
		if s.initializer != nil {
			r.resolveExpr(s.initializer)
		}
		r.define(s.name)
	case *whileStmt:
		r.resolveExpr(s.condition)
		r.resolveStmt(s.body)
	}
}

func (r *resolver) resolveClass(s *classStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() {
		r.currentClass = enclosingClass
	}()

	r.declare(s.name)
	r.define(s.name)

	if s.superclass != nil {
		if s.superclass.name.lexeme == s.name.lexeme {
			r.state.tokenError(errInheritFromSelf, s.superclass.name)
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.superclass)

		r.beginScope()
		r.peek()["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.peek()["this"] = true
	for _, method := range s.methods {
		kind := fnMethod
		if method.name.lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}
	r.endScope()
}

func (r *resolver) resolveFunction(fn *fnStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.params {
		r.declare(param)
		r.define(param)
	}
	r.resolve(fn.body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *resolver) resolveExpr(e expr) {
	switch e := e.(type) {
	case *assignExpr:
		r.resolveExpr(e.value)
		r.resolveLocal(e, e.name)
	case *binaryExpr:
		r.resolveExpr(e.left)
		r.resolveExpr(e.right)
	case *callExpr:
		r.resolveExpr(e.callee)
		for _, arg := range e.arguments {
			r.resolveExpr(arg)
		}
	case *getExpr:
		r.resolveExpr(e.object)
	case *groupingExpr:
		r.resolveExpr(e.expression)
	case *literalExpr:
	case *logicalExpr:
		r.resolveExpr(e.left)
		r.resolveExpr(e.right)
	case *setExpr:
		r.resolveExpr(e.value)
		r.resolveExpr(e.object)
	case *superExpr:
		if r.currentClass == classNone {
			r.state.tokenError(errSuperOutsideClass, e.keyword)
		} else if r.currentClass != classSubclass {
			r.state.tokenError(errSuperWithoutSuperclass, e.keyword)
		}
		r.resolveLocal(e, e.keyword)
	case *thisExpr:
		if r.currentClass == classNone {
			r.state.tokenError(errThisOutsideClass, e.keyword)
			return
		}
		r.resolveLocal(e, e.keyword)
	case *unaryExpr:
		r.resolveExpr(e.right)
	case *variableExpr:
		if len(r.scopes) > 0 {
			if defined, declared := r.peek()[e.name.lexeme]; declared && !defined {
				r.state.tokenError(errSelfInitializer, e.name)
			}
		}
		r.resolveLocal(e, e.name)
	}
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) peek() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

func (r *resolver) declare(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.peek()
	if _, ok := scope[name.lexeme]; ok {
		r.state.tokenError(errAlreadyDeclared, name)
	}
	scope[name.lexeme] = false
}

func (r *resolver) define(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	r.peek()[name.lexeme] = true
}

func (r *resolver) resolveLocal(e expr, name *token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.lexeme]; ok {
			r.locals[e] = len(r.scopes) - 1 - i
			return
		}
	}
}
