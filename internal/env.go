package internal

// env is one scope of the chain. Closures and bound methods hold pointers
// to the env they were created in, so an env lives as long as its longest
// lived closure.
type env struct {
	enclosing *env
	values    map[string]interface{}
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func (e *env) get(name *token) interface{} {
	if value, ok := e.values[name.lexeme]; ok {
		return value
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	runtimeErr(withDetail(errUndefinedVar, "Undefined variable '%s'.", name.lexeme), name)
	return nil
}

func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

func (e *env) assign(name *token, value interface{}) {
	if _, ok := e.values[name.lexeme]; ok {
		e.values[name.lexeme] = value
		return
	}
	if e.enclosing != nil {
		e.enclosing.assign(name, value)
		return
	}
	runtimeErr(withDetail(errUndefinedVar, "Undefined variable '%s'.", name.lexeme), name)
}

func (e *env) ancestor(distance int) *env {
	environment := e
	for i := 0; i < distance; i++ {
		environment = environment.enclosing
	}
	return environment
}

// getAt reads name exactly distance scopes up. The resolver guarantees the
// name is defined there.
func (e *env) getAt(distance int, name string) interface{} {
	return e.ancestor(distance).values[name]
}

func (e *env) assignAt(distance int, name *token, value interface{}) {
	e.ancestor(distance).values[name.lexeme] = value
}
