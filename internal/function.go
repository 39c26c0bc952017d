package internal

import "fmt"

type callable interface {
	arity() int
	call(exec *exec, arguments []interface{}) interface{}
}

// returnValue carries a return statement's value up to the enclosing call
type returnValue struct {
	value interface{}
}

type function struct {
	declaration   *fnStmt
	closure       *env
	isInitializer bool
}

func (f *function) arity() int {
	return len(f.declaration.params)
}

func (f *function) call(exec *exec, arguments []interface{}) (result interface{}) {
	env := newEnv(f.closure)
	for i := range f.declaration.params {
		env.define(f.declaration.params[i].lexeme, arguments[i])
	}

	defer func() {
		if r := recover(); r != nil {
			ret, isReturn := r.(returnValue)
			if !isReturn {
				panic(r)
			}
			result = ret.value
			if f.isInitializer {
				result = f.closure.getAt(0, "this")
			}
		}
	}()

	exec.executeBlock(f.declaration.body, env)

	if f.isInitializer {
		return f.closure.getAt(0, "this")
	}
	return nil
}

// bind returns a copy of the method whose closure defines this
func (f *function) bind(object *instance) *function {
	environment := newEnv(f.closure)
	environment.define("this", object)
	return &function{
		declaration:   f.declaration,
		closure:       environment,
		isInitializer: f.isInitializer,
	}
}

func (f *function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}
