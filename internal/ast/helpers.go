package ast

// The constructors below build nodes programmatically. They exist because
// this repository has no parser of its own — tests and embedders construct trees directly
// instead of going through source text.

func Int(v int64) *IntLit          { return &IntLit{Val: v} }
func Str(v string) *StringLit      { return &StringLit{Val: v} }
func Bool(v bool) *BoolLit         { return &BoolLit{Val: v} }
func Nil() *NilLit                 { return &NilLit{} }
func New() *NewObject              { return &NewObject{} }
func Name(n string) *QualifiedName { return &QualifiedName{Name: n} }

func Neg(e Expr) *Unary { return &Unary{Op: "neg", Operand: e} }
func Not(e Expr) *Unary { return &Unary{Op: "not", Operand: e} }

func Bin(op string, l, r Expr) *Binary { return &Binary{Op: op, Left: l, Right: r} }

func ConvertTo(to string, e Expr) *Convert { return &Convert{To: to, Expr: e} }

func CallExpr(name string, args ...Expr) *Call { return &Call{Name: name, Args: args} }

func P(name string) *Param    { return &Param{Name: name} }
func RefP(name string) *Param { return &Param{Name: name, Ref: true} }

func Var(name string) *VarDef       { return &VarDef{Name: name} }
func BVar(name string) *BlockVarDef { return &BlockVarDef{Name: name} }

func Assigns(target string, e Expr) *Assign { return &Assign{Target: target, Expr: e} }

func IfStmt(cond Expr, then []Stmt, els []Stmt) *If {
	return &If{Cond: cond, Then: then, Else: els}
}

func WhileStmt(cond Expr, body []Stmt) *While { return &While{Cond: cond, Body: body} }

func Ret(e Expr) *Return { return &Return{Expr: e} }

func Func(name string, params []*Param, stmts []Stmt) *FuncDef {
	return &FuncDef{Name: name, Params: params, Statements: stmts}
}

func Lambda(name string, params []*Param, stmts []Stmt) *FuncLit {
	return &FuncLit{Name: name, Params: params, Statements: stmts}
}

func Iface(name string, fields ...InterfaceField) *InterfaceDef {
	return &InterfaceDef{Name: name, Fields: fields}
}

func FVar(name string) *FieldVar { return &FieldVar{Name: name} }
func FFunc(name string, params ...*Param) *FieldFunc {
	return &FieldFunc{Name: name, Params: params}
}

func Prog(interfaces []*InterfaceDef, functions []*FuncDef) *Program {
	return &Program{Interfaces: interfaces, Functions: functions}
}
