package ast

import (
	"fmt"
)

// Literal kinds
const (
	LiteralString = iota
	LiteralInt
	LiteralFloat
	LiteralBool
)

// Expression represents a value or operation in a row predicate
type Expression interface {
	TokenLiteral() string
	String() string
	expressionNode()
}

// Identifier represents a column name
type Identifier struct {
	TokenLiteralValue string // The token literal (e.g. "facts")
	Value             string // The value (e.g. "facts")
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.TokenLiteralValue }
func (i *Identifier) String() string       { return i.Value }

// Literal represents a fixed value (string, number, boolean)
type Literal struct {
	TokenLiteralValue string
	Value             interface{} // string, int64, float64, bool
	Kind              int         // LiteralString, LiteralInt, LiteralFloat, LiteralBool
}

func (l *Literal) expressionNode()      {}
func (l *Literal) TokenLiteral() string { return l.TokenLiteralValue }
func (l *Literal) String() string       { return l.TokenLiteralValue }

// BinaryExpression: Left Operator Right (e.g. numbers > 2, a AND b)
type BinaryExpression struct {
	Left     Expression
	Operator string // ==, !=, <, <=, >, >=, AND, OR
	Right    Expression
}

func (e *BinaryExpression) expressionNode()      {}
func (e *BinaryExpression) TokenLiteral() string { return e.Operator }
func (e *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Operator, e.Right.String())
}

// UnaryExpression: NOT operand
type UnaryExpression struct {
	Operator string // NOT
	Operand  Expression
}

func (e *UnaryExpression) expressionNode()      {}
func (e *UnaryExpression) TokenLiteral() string { return e.Operator }
func (e *UnaryExpression) String() string {
	return fmt.Sprintf("(%s %s)", e.Operator, e.Operand.String())
}
