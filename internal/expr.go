package internal

// expr is the closed set of expression nodes. Each pass (resolver, exec,
// printer) switches over the concrete types, so nodes carry data only.
//
// Nodes are always handled through pointers: the resolver keys its
// distance table on node identity.
type expr interface {
	exprNode()
}

type assignExpr struct {
	name  *token
	value expr
}

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

type callExpr struct {
	callee    expr
	paren     *token
	arguments []expr
}

type getExpr struct {
	object expr
	name   *token
}

type groupingExpr struct {
	expression expr
}

type literalExpr struct {
	value interface{}
}

type logicalExpr struct {
	left     expr
	operator *token
	right    expr
}

type setExpr struct {
	object expr
	name   *token
	value  expr
}

type superExpr struct {
	keyword *token
	method  *token
}

type thisExpr struct {
	keyword *token
}

type unaryExpr struct {
	operator *token
	right    expr
}

type variableExpr struct {
	name *token
}

func (*assignExpr) exprNode()   {}
func (*binaryExpr) exprNode()   {}
func (*callExpr) exprNode()     {}
func (*getExpr) exprNode()      {}
func (*groupingExpr) exprNode() {}
func (*literalExpr) exprNode()  {}
func (*logicalExpr) exprNode()  {}
func (*setExpr) exprNode()      {}
func (*superExpr) exprNode()    {}
func (*thisExpr) exprNode()     {}
func (*unaryExpr) exprNode()    {}
func (*variableExpr) exprNode() {}
