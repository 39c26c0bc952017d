package internal

type class struct {
	name       string
	superclass *class
	methods    map[string]*function
}

// findMethod looks the method up in the class and then up the superclass chain
func (c *class) findMethod(name string) *function {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

func (c *class) arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

func (c *class) call(exec *exec, arguments []interface{}) interface{} {
	obj := &instance{
		class:  c,
		fields: make(map[string]interface{}),
	}
	if init := c.findMethod("init"); init != nil {
		init.bind(obj).call(exec, arguments)
	}
	return obj
}

func (c *class) String() string {
	return c.name
}

type instance struct {
	class  *class
	fields map[string]interface{}
}

// get returns the field if set, otherwise a freshly bound method
func (o *instance) get(tk *token) interface{} {
	if val, ok := o.fields[tk.lexeme]; ok {
		return val
	}
	if method := o.class.findMethod(tk.lexeme); method != nil {
		return method.bind(o)
	}
	runtimeErr(withDetail(errUndefinedProp, "Undefined property '%s'.", tk.lexeme), tk)
	return nil
}

func (o *instance) set(name *token, value interface{}) {
	o.fields[name.lexeme] = value
}

func (o *instance) String() string {
	return o.class.name + " instance"
}
