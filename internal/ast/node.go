package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (c *Comment) NodePos() Position    { return c.Pos }
func (c *Comment) NodeEndPos() Position { return c.EndPos }
func (*Comment) NodeType() NodeType     { return COMMENT }

func (bs *BadStmt) NodePos() Position    { return bs.Bad.Pos }
func (bs *BadStmt) NodeEndPos() Position { return bs.Bad.EndPos }
func (*BadStmt) NodeType() NodeType      { return BAD_STMT }

func (v *VarDecl) NodePos() Position    { return v.Pos }
func (v *VarDecl) NodeEndPos() Position { return v.EndPos }
func (*VarDecl) NodeType() NodeType     { return VAR_DECL }

func (d *Declarator) NodePos() Position    { return d.Pos }
func (d *Declarator) NodeEndPos() Position { return d.EndPos }
func (*Declarator) NodeType() NodeType     { return DECLARATOR }

func (b *BlockStmt) NodePos() Position    { return b.Pos }
func (b *BlockStmt) NodeEndPos() Position { return b.EndPos }
func (*BlockStmt) NodeType() NodeType     { return BLOCK_STMT }

func (s *IfStmt) NodePos() Position    { return s.Pos }
func (s *IfStmt) NodeEndPos() Position { return s.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (w *WhileStmt) NodePos() Position    { return w.Pos }
func (w *WhileStmt) NodeEndPos() Position { return w.EndPos }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (d *DoWhileStmt) NodePos() Position    { return d.Pos }
func (d *DoWhileStmt) NodeEndPos() Position { return d.EndPos }
func (*DoWhileStmt) NodeType() NodeType     { return DO_WHILE_STMT }

func (f *ForStmt) NodePos() Position    { return f.Pos }
func (f *ForStmt) NodeEndPos() Position { return f.EndPos }
func (*ForStmt) NodeType() NodeType     { return FOR_STMT }

func (s *SwitchStmt) NodePos() Position    { return s.Pos }
func (s *SwitchStmt) NodeEndPos() Position { return s.EndPos }
func (*SwitchStmt) NodeType() NodeType     { return SWITCH_STMT }

func (c *SwitchCase) NodePos() Position    { return c.Pos }
func (c *SwitchCase) NodeEndPos() Position { return c.EndPos }
func (*SwitchCase) NodeType() NodeType     { return SWITCH_CASE }

func (f *FuncDecl) NodePos() Position    { return f.Pos }
func (f *FuncDecl) NodeEndPos() Position { return f.EndPos }
func (*FuncDecl) NodeType() NodeType     { return FUNC_DECL }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (*Param) NodeType() NodeType     { return PARAM }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (e *EmptyStmt) NodePos() Position    { return e.Pos }
func (e *EmptyStmt) NodeEndPos() Position { return e.EndPos }
func (*EmptyStmt) NodeType() NodeType     { return EMPTY_STMT }

func (b *BranchStmt) NodePos() Position    { return b.Pos }
func (b *BranchStmt) NodeEndPos() Position { return b.EndPos }
func (*BranchStmt) NodeType() NodeType     { return BRANCH_STMT }

func (be *BadExpr) NodePos() Position    { return be.Bad.Pos }
func (be *BadExpr) NodeEndPos() Position { return be.Bad.EndPos }
func (*BadExpr) NodeType() NodeType      { return BAD_EXPR }

func (l *LiteralExpr) NodePos() Position    { return l.Pos }
func (l *LiteralExpr) NodeEndPos() Position { return l.EndPos }
func (*LiteralExpr) NodeType() NodeType     { return LITERAL_EXPR }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (l *LogicalExpr) NodePos() Position    { return l.Pos }
func (l *LogicalExpr) NodeEndPos() Position { return l.EndPos }
func (*LogicalExpr) NodeType() NodeType     { return LOGICAL_EXPR }

func (c *ConditionalExpr) NodePos() Position    { return c.Pos }
func (c *ConditionalExpr) NodeEndPos() Position { return c.EndPos }
func (*ConditionalExpr) NodeType() NodeType     { return CONDITIONAL_EXPR }

func (a *AssignExpr) NodePos() Position    { return a.Pos }
func (a *AssignExpr) NodeEndPos() Position { return a.EndPos }
func (*AssignExpr) NodeType() NodeType     { return ASSIGN_EXPR }

func (u *UpdateExpr) NodePos() Position    { return u.Pos }
func (u *UpdateExpr) NodeEndPos() Position { return u.EndPos }
func (*UpdateExpr) NodeType() NodeType     { return UPDATE_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (s *SequenceExpr) NodePos() Position    { return s.Pos }
func (s *SequenceExpr) NodeEndPos() Position { return s.EndPos }
func (*SequenceExpr) NodeType() NodeType     { return SEQUENCE_EXPR }

func (a *ArrayExpr) NodePos() Position    { return a.Pos }
func (a *ArrayExpr) NodeEndPos() Position { return a.EndPos }
func (*ArrayExpr) NodeType() NodeType     { return ARRAY_EXPR }

func (f *FuncExpr) NodePos() Position    { return f.Pos }
func (f *FuncExpr) NodeEndPos() Position { return f.EndPos }
func (*FuncExpr) NodeType() NodeType     { return FUNC_EXPR }

func (a *ArrowFuncExpr) NodePos() Position    { return a.Pos }
func (a *ArrowFuncExpr) NodeEndPos() Position { return a.EndPos }
func (*ArrowFuncExpr) NodeType() NodeType     { return ARROW_FUNC_EXPR }

func (p *ParenExpr) NodePos() Position    { return p.Pos }
func (p *ParenExpr) NodeEndPos() Position { return p.EndPos }
func (*ParenExpr) NodeType() NodeType     { return PAREN_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }
