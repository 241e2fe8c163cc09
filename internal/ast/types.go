package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota
	BAD_STMT
	BAD_EXPR

	// Top level
	PROGRAM
	IDENT
	COMMENT

	// Statements
	VAR_DECL
	DECLARATOR
	BLOCK_STMT
	IF_STMT
	WHILE_STMT
	DO_WHILE_STMT
	FOR_STMT
	SWITCH_STMT
	SWITCH_CASE
	FUNC_DECL
	PARAM
	RETURN_STMT
	EXPR_STMT
	EMPTY_STMT
	BRANCH_STMT

	// Expressions
	LITERAL_EXPR
	IDENT_EXPR
	BINARY_EXPR
	LOGICAL_EXPR
	CONDITIONAL_EXPR
	ASSIGN_EXPR
	UPDATE_EXPR
	CALL_EXPR
	SEQUENCE_EXPR
	ARRAY_EXPR
	FUNC_EXPR
	ARROW_FUNC_EXPR
	PAREN_EXPR
	UNARY_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:          "Illegal",
	BAD_STMT:         "BadStatement",
	BAD_EXPR:         "BadExpression",
	PROGRAM:          "Program",
	IDENT:            "Identifier",
	COMMENT:          "Comment",
	VAR_DECL:         "VariableDeclaration",
	DECLARATOR:       "VariableDeclarator",
	BLOCK_STMT:       "BlockStatement",
	IF_STMT:          "IfStatement",
	WHILE_STMT:       "WhileStatement",
	DO_WHILE_STMT:    "DoWhileStatement",
	FOR_STMT:         "ForStatement",
	SWITCH_STMT:      "SwitchStatement",
	SWITCH_CASE:      "SwitchCase",
	FUNC_DECL:        "FunctionDeclaration",
	PARAM:            "Parameter",
	RETURN_STMT:      "ReturnStatement",
	EXPR_STMT:        "ExpressionStatement",
	EMPTY_STMT:       "EmptyStatement",
	BRANCH_STMT:      "BranchStatement",
	LITERAL_EXPR:     "Literal",
	IDENT_EXPR:       "IdentifierReference",
	BINARY_EXPR:      "BinaryExpression",
	LOGICAL_EXPR:     "LogicalExpression",
	CONDITIONAL_EXPR: "ConditionalExpression",
	ASSIGN_EXPR:      "AssignmentExpression",
	UPDATE_EXPR:      "UpdateExpression",
	CALL_EXPR:        "CallExpression",
	SEQUENCE_EXPR:    "SequenceExpression",
	ARRAY_EXPR:       "ArrayExpression",
	FUNC_EXPR:        "FunctionExpression",
	ARROW_FUNC_EXPR:  "ArrowFunctionExpression",
	PAREN_EXPR:       "ParenthesizedExpression",
	UNARY_EXPR:       "UnaryExpression",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "NodeType(?)"
}

// LiteralKind distinguishes the literal forms of the subset.
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
	BooleanLiteral
	NullLiteral
)
