package internal

import (
	"strings"
)

// printTree prints every top level statement of the state, one per line
func (s *interpreterState) printTree() {
	for _, st := range s.stmts {
		s.printer.Println(formatStmt(st))
	}
}

// formatExpr renders an expression back to source text. Groupings are nodes
// of their own, so no parentheses are added and parsing the output gives
// back the same tree.
func formatExpr(e expr) string {
	switch e := e.(type) {
	case *assignExpr:
		return e.name.lexeme + " = " + formatExpr(e.value)
	case *binaryExpr:
		return formatExpr(e.left) + " " + e.operator.lexeme + " " + formatExpr(e.right)
	case *callExpr:
		args := make([]string, len(e.arguments))
		for i, arg := range e.arguments {
			args[i] = formatExpr(arg)
		}
		return formatExpr(e.callee) + "(" + strings.Join(args, ", ") + ")"
	case *getExpr:
		return formatExpr(e.object) + "." + e.name.lexeme
	case *groupingExpr:
		return "(" + formatExpr(e.expression) + ")"
	case *literalExpr:
		if str, isString := e.value.(string); isString {
			return "\"" + str + "\""
		}
		return stringify(e.value)
	case *logicalExpr:
		return formatExpr(e.left) + " " + e.operator.lexeme + " " + formatExpr(e.right)
	case *setExpr:
		return formatExpr(e.object) + "." + e.name.lexeme + " = " + formatExpr(e.value)
	case *superExpr:
		return "super." + e.method.lexeme
	case *thisExpr:
		return "this"
	case *unaryExpr:
		return e.operator.lexeme + formatExpr(e.right)
	case *variableExpr:
		return e.name.lexeme
	}
	return ""
}

// formatStmt renders a statement as a parenthesized tree
func formatStmt(s stmt) string {
	switch s := s.(type) {
	case *blockStmt:
		return parenthesize("block", formatStmts(s.stmts)...)
	case *classStmt:
		parts := []string{s.name.lexeme}
		if s.superclass != nil {
			parts = append(parts, "<", s.superclass.name.lexeme)
		}
		for _, method := range s.methods {
			parts = append(parts, formatStmt(method))
		}
		return parenthesize("class", parts...)
	case *exprStmt:
		return parenthesize(";", formatExpr(s.expression))
	case *fnStmt:
		params := make([]string, len(s.params))
		for i, param := range s.params {
			params[i] = param.lexeme
		}
		parts := append([]string{s.name.lexeme, parenthesize("", params...)}, formatStmts(s.body)...)
		return parenthesize("fun", parts...)
	case *ifStmt:
		parts := []string{formatExpr(s.condition), formatStmt(s.thenBranch)}
		if s.elseBranch != nil {
			parts = append(parts, formatStmt(s.elseBranch))
		}
		return parenthesize("if", parts...)
	case *printStmt:
		return parenthesize("print", formatExpr(s.expression))
	case *returnStmt:
		if s.value == nil {
			return "(return)"
		}
		return parenthesize("return", formatExpr(s.value))
	case *varStmt:
		if s.initializer == nil {
			return parenthesize("var", s.name.lexeme)
		}
		return parenthesize("var", s.name.lexeme, formatExpr(s.initializer))
	case *whileStmt:
		return parenthesize("while", formatExpr(s.condition), formatStmt(s.body))
	}
	return ""
}

func formatStmts(stmts []stmt) []string {
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = formatStmt(s)
	}
	return out
}

func parenthesize(name string, parts ...string) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for i, part := range parts {
		if name != "" || i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(part)
	}
	b.WriteString(")")
	return b.String()
}
