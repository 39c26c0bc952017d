package internal

type stmt interface {
	stmtNode()
}

type blockStmt struct {
	stmts []stmt
}

type exprStmt struct {
	expression expr
}

type fnStmt struct {
	name   *token
	params []*token
	body   []stmt
}

type ifStmt struct {
	condition  expr
	thenBranch stmt
	elseBranch stmt
}

type printStmt struct {
	expression expr
}

type returnStmt struct {
	keyword *token
	value   expr
}

type varStmt struct {
	name        *token
	initializer expr
}

type whileStmt struct {
	condition expr
	body      stmt
}

type classStmt struct {
	name       *token
	superclass *variableExpr
	methods    []*fnStmt
}

func (*blockStmt) stmtNode()  {}
func (*exprStmt) stmtNode()   {}
func (*fnStmt) stmtNode()     {}
func (*ifStmt) stmtNode()     {}
func (*printStmt) stmtNode()  {}
func (*returnStmt) stmtNode() {}
func (*varStmt) stmtNode()    {}
func (*whileStmt) stmtNode()  {}
func (*classStmt) stmtNode()  {}
