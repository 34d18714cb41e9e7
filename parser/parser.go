/*
File    : vanction/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a top-down recursive-descent parser for
// vanction source, producing an *ast.Program. It follows the explicit
// fifteen-level precedence cascade rather than a Pratt dispatch table:
// one method per level, lowest (assignment) calling into the next
// tightest, bottoming out at primary expressions. The only backtracking
// is the narrowly-scoped multi-assignment lookahead in parseAssignment.
package parser

import (
	"strconv"

	"github.com/akashmaji946/vanction/ast"
	"github.com/akashmaji946/vanction/lexer"
	"github.com/akashmaji946/vanction/object"
)

// Parser holds parsing state: the lexer, two-token lookahead, the
// source file name (for error positions), and collected errors.
type Parser struct {
	Lex  lexer.Lexer
	File string

	cur  lexer.Token
	peek lexer.Token

	Errors ParseErrors
}

// NewParser creates a parser over src, attributing errors to file.
func NewParser(src, file string) *Parser {
	p := &Parser{Lex: lexer.NewLexer(src), File: file}
	p.advance()
	p.advance()
	return p
}

// advance discards NEWLINE tokens as insignificant whitespace (per
// spec §4.1: "the parser tolerates and discards it between
// statements") and shifts cur/peek forward by one meaningful token.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.nextSignificant()
}

func (p *Parser) nextSignificant() lexer.Token {
	for {
		tok := p.Lex.NextToken()
		if tok.Type == lexer.NEWLINE {
			continue
		}
		return tok
	}
}

// snapshot captures enough state to undo speculative lookahead.
type snapshot struct {
	lex  lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

func (p *Parser) snapshot() snapshot {
	return snapshot{lex: p.Lex, cur: p.cur, peek: p.peek}
}

func (p *Parser) restore(s snapshot) {
	p.Lex = s.lex
	p.cur = s.cur
	p.peek = s.peek
}

func (p *Parser) errorf(pos ast.Pos, hint string, format string, args ...interface{}) {
	e := object.NewError(object.SyntaxErrorKind, p.File, pos.Line, pos.Column, format, args...)
	if hint != "" {
		e.WithHint(hint)
	}
	p.Errors.Add(e)
}

func (p *Parser) pos() ast.Pos {
	return ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
}

// expect reports a structured error (with a terminator hint for `;`,
// `}`, `)`) when cur does not match want, but does not consume it.
func (p *Parser) expect(want lexer.TokenType) bool {
	if p.cur.Type == want {
		return true
	}
	hint := ""
	switch want {
	case lexer.SEMICOLON:
		hint = "add a `;` or start a new line to terminate the statement"
	case lexer.RBRACE:
		hint = "add a closing `}`"
	case lexer.RPAREN:
		hint = "add a closing `)`"
	}
	p.errorf(p.pos(), hint, "expected %s, found %s", want, p.cur.Type)
	return false
}

// Parse consumes the full token stream, returning the Program and
// collecting any syntax errors into p.Errors rather than panicking.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for p.cur.Type != lexer.EOF {
		if p.cur.Type == lexer.FUNC {
			prog.Functions = append(prog.Functions, p.parseFunctionDef())
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

// ---- statements ----

func (p *Parser) parseBlock() []ast.Stmt {
	if !p.expect(lexer.LBRACE) {
		return nil
	}
	p.advance() // consume '{'
	var stmts []ast.Stmt
	for p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		if p.cur.Type == lexer.FUNC {
			stmts = append(stmts, p.parseFunctionDef())
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.expect(lexer.RBRACE)
	p.advance() // consume '}' (or resync past whatever is here on error)
	return stmts
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Type {
	case lexer.IF:
		return p.parseIfOrElseIf(lexer.IF)
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.SWITCH:
		return p.parseSwitchStatement()
	case lexer.TRY:
		return p.parseTryStatement()
	case lexer.THROW:
		return p.parseThrowStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.BREAK:
		pos := p.pos()
		p.advance()
		p.consumeOptionalTerminator()
		return &ast.BreakStatement{Pos: pos}
	case lexer.CONTINUE:
		pos := p.pos()
		p.advance()
		p.consumeOptionalTerminator()
		return &ast.ContinueStatement{Pos: pos}
	case lexer.IMPORT:
		return p.parseImportStatement()
	case lexer.DEFINE:
		return p.parseDefineStatement()
	case lexer.IMMUT:
		return p.parseImmutStatement()
	case lexer.FUNC:
		return p.parseFunctionDef()
	case lexer.LBRACE:
		pos := p.pos()
		stmts := p.parseBlock()
		return &ast.BlockStatement{Pos: pos, Stmts: stmts}
	case lexer.SEMICOLON:
		p.advance()
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) consumeOptionalTerminator() {
	if p.cur.Type == lexer.SEMICOLON {
		p.advance()
	}
}

func (p *Parser) parseExpressionStatement() ast.Stmt {
	pos := p.pos()
	expr := p.parseExpression()
	p.consumeOptionalTerminator()
	return &ast.ExpressionStatement{Pos: pos, Expr: expr}
}

func (p *Parser) parseFunctionDef() *ast.FunctionDef {
	pos := p.pos()
	p.advance() // 'func'
	name := p.cur.Literal
	if p.cur.Type == lexer.IDENT {
		p.advance()
	} else {
		p.errorf(pos, "", "expected function name, found %s", p.cur.Type)
	}
	p.expect(lexer.LPAREN)
	p.advance()
	var params []string
	for p.cur.Type != lexer.RPAREN && p.cur.Type != lexer.EOF {
		if p.cur.Type == lexer.IDENT {
			params = append(params, p.cur.Literal)
			p.advance()
		} else if p.cur.Type != lexer.COMMA {
			break
		}
		if p.cur.Type == lexer.COMMA {
			p.advance()
		}
	}
	p.expect(lexer.RPAREN)
	p.advance()
	body := p.parseBlock()
	return &ast.FunctionDef{Pos: pos, Name: name, Params: params, Body: body}
}

func (p *Parser) parseIfOrElseIf(open lexer.TokenType) *ast.IfStatement {
	pos := p.pos()
	p.advance() // 'if' or 'else-if'
	cond := p.parseExpression()
	then := p.parseBlock()
	node := &ast.IfStatement{Pos: pos, Cond: cond, Then: then}
	if p.cur.Type == lexer.ELSE_IF {
		node.Else = []ast.Stmt{p.parseIfOrElseIf(lexer.ELSE_IF)}
	} else if p.cur.Type == lexer.ELSE {
		p.advance()
		node.Else = p.parseBlock()
	}
	return node
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	pos := p.pos()
	p.advance() // 'while'
	cond := p.parseExpression()
	body := p.parseBlock()
	return &ast.WhileStatement{Pos: pos, Cond: cond, Body: body}
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	pos := p.pos()
	p.advance() // 'for'
	p.expect(lexer.LPAREN)
	p.advance()

	if p.cur.Type == lexer.IDENT && p.peek.Type == lexer.IN {
		name := p.cur.Literal
		p.advance() // ident
		p.advance() // 'in'
		iterable := p.parseExpression()
		p.expect(lexer.RPAREN)
		p.advance()
		body := p.parseBlock()
		return &ast.ForStatement{Pos: pos, IsForIn: true, IterVar: name, Iterable: iterable, Body: body}
	}

	var init ast.Stmt
	if p.cur.Type != lexer.SEMICOLON {
		init = p.parseSimpleStatement()
	}
	p.expect(lexer.SEMICOLON)
	p.advance()

	var cond ast.Expr
	if p.cur.Type != lexer.SEMICOLON {
		cond = p.parseExpression()
	}
	p.expect(lexer.SEMICOLON)
	p.advance()

	var update ast.Stmt
	if p.cur.Type != lexer.RPAREN {
		update = p.parseSimpleStatement()
	}
	p.expect(lexer.RPAREN)
	p.advance()

	body := p.parseBlock()
	return &ast.ForStatement{Pos: pos, Init: init, Cond: cond, Update: update, Body: body}
}

// parseSimpleStatement parses one statement without consuming a
// trailing terminator -- used for a C-style for loop's init/update
// clauses, which are delimited by `;`/`)` rather than owning one.
func (p *Parser) parseSimpleStatement() ast.Stmt {
	pos := p.pos()
	switch p.cur.Type {
	case lexer.DEFINE:
		p.advance()
		name := p.cur.Literal
		p.advance()
		return &ast.DefineStatement{Pos: pos, Name: name}
	case lexer.IMMUT:
		p.advance()
		name := p.cur.Literal
		p.advance()
		p.expect(lexer.ASSIGN)
		p.advance()
		value := p.parseExpression()
		return &ast.ImmutStatement{Pos: pos, Name: name, Value: value}
	default:
		return &ast.ExpressionStatement{Pos: pos, Expr: p.parseExpression()}
	}
}

func (p *Parser) parseSwitchStatement() *ast.SwitchStatement {
	pos := p.pos()
	p.advance() // 'switch'
	expr := p.parseExpression()
	p.expect(lexer.LBRACE)
	p.advance()

	node := &ast.SwitchStatement{Pos: pos, Expr: expr}
	for p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		switch p.cur.Type {
		case lexer.CASE:
			casePos := p.pos()
			p.advance()
			val := p.parseExpression()
			p.expect(lexer.COLON)
			p.advance()
			body := p.parseCaseBody()
			node.Cases = append(node.Cases, ast.SwitchCase{Pos: casePos, Value: val, Body: body})
		case lexer.DEFAULT:
			p.advance()
			p.expect(lexer.COLON)
			p.advance()
			node.Default = p.parseCaseBody()
		default:
			p.errorf(p.pos(), "", "expected case or default, found %s", p.cur.Type)
			p.advance()
		}
	}
	p.expect(lexer.RBRACE)
	p.advance()
	return node
}

func (p *Parser) parseCaseBody() []ast.Stmt {
	var stmts []ast.Stmt
	for p.cur.Type != lexer.CASE && p.cur.Type != lexer.DEFAULT &&
		p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func (p *Parser) parseTryStatement() *ast.TryStatement {
	pos := p.pos()
	p.advance() // 'try'
	tryBody := p.parseBlock()
	node := &ast.TryStatement{Pos: pos, Try: tryBody}

	if p.cur.Type == lexer.CATCH {
		p.advance()
		if p.cur.Type == lexer.LPAREN {
			p.advance()
			if p.cur.Type == lexer.IDENT {
				node.CatchType = p.cur.Literal
				p.advance()
			}
			p.expect(lexer.RPAREN)
			p.advance()
		}
		if p.cur.Type == lexer.IDENT && p.cur.Literal == "as" {
			p.advance()
			if p.cur.Type == lexer.IDENT {
				node.CatchVar = p.cur.Literal
				p.advance()
			}
		}
		node.HasCatch = true
		node.Catch = p.parseBlock()
	}
	if p.cur.Type == lexer.FINALLY {
		p.advance()
		node.Finally = p.parseBlock()
	}
	return node
}

func (p *Parser) parseThrowStatement() *ast.ThrowStatement {
	pos := p.pos()
	p.advance() // 'throw'
	var val ast.Expr
	if p.cur.Type != lexer.SEMICOLON && p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		val = p.parseExpression()
	}
	p.consumeOptionalTerminator()
	return &ast.ThrowStatement{Pos: pos, Value: val}
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	pos := p.pos()
	p.advance() // 'return'
	var val ast.Expr
	if p.cur.Type != lexer.SEMICOLON && p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		val = p.parseExpression()
	}
	p.consumeOptionalTerminator()
	return &ast.ReturnStatement{Pos: pos, Value: val}
}

func (p *Parser) parseImportStatement() *ast.ImportStatement {
	pos := p.pos()
	p.advance() // 'import'
	var path []string
	if p.cur.Type == lexer.IDENT {
		path = append(path, p.cur.Literal)
		p.advance()
	}
	for p.cur.Type == lexer.DOT {
		p.advance()
		if p.cur.Type == lexer.IDENT {
			path = append(path, p.cur.Literal)
			p.advance()
		}
	}
	node := &ast.ImportStatement{Pos: pos, Path: path}
	if p.cur.Type == lexer.USING {
		p.advance()
		node.Using = true
		if p.cur.Type == lexer.IDENT {
			node.Alias = p.cur.Literal
			p.advance()
		}
	}
	p.consumeOptionalTerminator()
	return node
}

func (p *Parser) parseDefineStatement() *ast.DefineStatement {
	pos := p.pos()
	p.advance() // 'define'
	name := p.cur.Literal
	if p.cur.Type == lexer.IDENT {
		p.advance()
	}
	p.consumeOptionalTerminator()
	return &ast.DefineStatement{Pos: pos, Name: name}
}

func (p *Parser) parseImmutStatement() *ast.ImmutStatement {
	pos := p.pos()
	p.advance() // 'immut'
	name := p.cur.Literal
	if p.cur.Type == lexer.IDENT {
		p.advance()
	}
	p.expect(lexer.ASSIGN)
	p.advance()
	value := p.parseExpression()
	p.consumeOptionalTerminator()
	return &ast.ImmutStatement{Pos: pos, Name: name, Value: value}
}

// ---- expressions: precedence cascade, lowest to highest ----

func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment handles right-associative `=` and the one
// speculative lookahead in the whole grammar: `IDENT (, IDENT)+ =`
// for MultiAssign. If the lookahead doesn't pan out, the lexer/token
// state is rewound and the normal precedence chain runs instead.
func (p *Parser) parseAssignment() ast.Expr {
	if p.cur.Type == lexer.IDENT && p.peek.Type == lexer.COMMA {
		if node := p.tryParseMultiAssign(); node != nil {
			return node
		}
	}

	left := p.parseLogicalOr()
	if p.cur.Type == lexer.ASSIGN {
		pos := p.pos()
		p.advance()
		right := p.parseAssignment()
		isConst := false
		return &ast.Binary{Pos: pos, Op: "=", Left: left, Right: right, IsConstant: isConst}
	}
	return left
}

func (p *Parser) tryParseMultiAssign() ast.Expr {
	snap := p.snapshot()
	pos := p.pos()

	targets := []string{p.cur.Literal}
	p.advance() // first ident

	for p.cur.Type == lexer.COMMA {
		p.advance()
		if p.cur.Type != lexer.IDENT {
			p.restore(snap)
			return nil
		}
		targets = append(targets, p.cur.Literal)
		p.advance()
	}

	if p.cur.Type != lexer.ASSIGN {
		p.restore(snap)
		return nil
	}
	p.advance() // '='
	value := p.parseAssignment()
	return &ast.MultiAssign{Pos: pos, Targets: targets, Value: value}
}

func (p *Parser) parseLogicalOr() ast.Expr {
	left := p.parseLogicalAnd()
	for p.cur.Type == lexer.OR_OR || p.cur.Type == lexer.OR_KW {
		pos := p.pos()
		p.advance()
		right := p.parseLogicalAnd()
		left = &ast.Binary{Pos: pos, Op: "||", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	left := p.parseEquality()
	for p.cur.Type == lexer.AND_AND || p.cur.Type == lexer.AND_KW {
		pos := p.pos()
		p.advance()
		right := p.parseEquality()
		left = &ast.Binary{Pos: pos, Op: "&&", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseBitwiseOr()
	for p.cur.Type == lexer.EQ || p.cur.Type == lexer.NOT_EQ {
		op := string(p.cur.Type)
		pos := p.pos()
		p.advance()
		right := p.parseBitwiseOr()
		left = &ast.Binary{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseBitwiseOr() ast.Expr {
	left := p.parseBitwiseXor()
	for p.cur.Type == lexer.PIPE {
		pos := p.pos()
		p.advance()
		right := p.parseBitwiseXor()
		left = &ast.Binary{Pos: pos, Op: "|", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseBitwiseXor() ast.Expr {
	left := p.parseBitwiseAnd()
	for p.cur.Type == lexer.CARET_CARET {
		pos := p.pos()
		p.advance()
		right := p.parseBitwiseAnd()
		left = &ast.Binary{Pos: pos, Op: "^^", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseBitwiseAnd() ast.Expr {
	left := p.parseShift()
	for p.cur.Type == lexer.AMP {
		pos := p.pos()
		p.advance()
		right := p.parseShift()
		left = &ast.Binary{Pos: pos, Op: "&", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseShift() ast.Expr {
	left := p.parseComparison()
	for p.cur.Type == lexer.LSHIFT || p.cur.Type == lexer.RSHIFT {
		op := string(p.cur.Type)
		pos := p.pos()
		p.advance()
		right := p.parseComparison()
		left = &ast.Binary{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()
	for p.cur.Type == lexer.LT || p.cur.Type == lexer.GT || p.cur.Type == lexer.LTE || p.cur.Type == lexer.GTE {
		op := string(p.cur.Type)
		pos := p.pos()
		p.advance()
		right := p.parseAdditive()
		left = &ast.Binary{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.cur.Type == lexer.PLUS || p.cur.Type == lexer.MINUS {
		op := string(p.cur.Type)
		pos := p.pos()
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.Binary{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.cur.Type == lexer.STAR || p.cur.Type == lexer.SLASH || p.cur.Type == lexer.PERCENT {
		op := string(p.cur.Type)
		pos := p.pos()
		p.advance()
		right := p.parseUnary()
		left = &ast.Binary{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.cur.Type == lexer.MINUS || p.cur.Type == lexer.PLUS || p.cur.Type == lexer.BANG || p.cur.Type == lexer.TILDE {
		op := string(p.cur.Type)
		pos := p.pos()
		p.advance()
		operand := p.parseUnary()
		return &ast.Unary{Pos: pos, Op: op, Operand: operand}
	}
	return p.parsePower()
}

// parsePower implements the `^`/`^3`/`^N` family as postfix exponent
// operators: `^` alone means square, `^3` cube, `^N` the Nth power.
// Per spec §9, this literal reading of §4.2.3 ("^ without a following
// integer means square") is taken as authoritative over the reference
// implementation's bare-`^` generic binary-exponent behavior.
func (p *Parser) parsePower() ast.Expr {
	left := p.parsePostfix()
	for p.cur.Type == lexer.CARET || p.cur.Type == lexer.POWER_N {
		pos := p.pos()
		var exponent int64 = 2
		if p.cur.Type == lexer.POWER_N {
			n, err := strconv.ParseInt(p.cur.Literal[1:], 10, 64)
			if err == nil {
				exponent = n
			}
		}
		p.advance()
		left = &ast.Binary{
			Pos:   pos,
			Op:    "^",
			Left:  left,
			Right: &ast.Literal{Pos: pos, Value: exponent},
		}
	}
	return left
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch p.cur.Type {
		case lexer.LPAREN:
			expr = p.parseCall(expr)
		case lexer.DOT:
			pos := p.pos()
			p.advance()
			name := p.cur.Literal
			if p.cur.Type == lexer.IDENT || p.cur.Type == lexer.PRINT || p.cur.Type == lexer.INPUT {
				p.advance()
			}
			expr = &ast.Member{Pos: pos, Object: expr, Property: name}
		case lexer.LBRACKET:
			pos := p.pos()
			p.advance()
			idx := p.parseExpression()
			p.expect(lexer.RBRACKET)
			p.advance()
			expr = &ast.Index{Pos: pos, Object: expr, Index: idx}
		default:
			return expr
		}
	}
}

func (p *Parser) parseCall(callee ast.Expr) ast.Expr {
	pos := p.pos()
	p.advance() // '('
	var args []ast.Expr
	var named []ast.NamedArg
	for p.cur.Type != lexer.RPAREN && p.cur.Type != lexer.EOF {
		if p.cur.Type == lexer.IDENT && p.peek.Type == lexer.COLON {
			name := p.cur.Literal
			p.advance()
			p.advance() // ':'
			named = append(named, ast.NamedArg{Name: name, Value: p.parseExpression()})
		} else {
			args = append(args, p.parseExpression())
		}
		if p.cur.Type == lexer.COMMA {
			p.advance()
		}
	}
	p.expect(lexer.RPAREN)
	p.advance()
	return &ast.Call{Pos: pos, Callee: callee, Args: args, NamedArgs: named}
}

func (p *Parser) parsePrimary() ast.Expr {
	pos := p.pos()
	switch p.cur.Type {
	case lexer.INT:
		v, _ := strconv.ParseInt(p.cur.Literal, 10, 64)
		p.advance()
		return &ast.Literal{Pos: pos, Value: v}
	case lexer.FLOAT:
		v, _ := strconv.ParseFloat(p.cur.Literal, 64)
		p.advance()
		return &ast.Literal{Pos: pos, Value: v}
	case lexer.STRING, lexer.FSTRING, lexer.RAWSTRING:
		v := p.cur.Literal
		kind := ""
		if p.cur.Type == lexer.FSTRING {
			kind = "f"
		} else if p.cur.Type == lexer.RAWSTRING {
			kind = "r"
		}
		p.advance()
		return &ast.Literal{Pos: pos, Value: v, StrKind: kind}
	case lexer.TRUE:
		p.advance()
		return &ast.Literal{Pos: pos, Value: true}
	case lexer.FALSE:
		p.advance()
		return &ast.Literal{Pos: pos, Value: false}
	case lexer.IDENT:
		name := p.cur.Literal
		p.advance()
		return &ast.Identifier{Pos: pos, Name: name}
	case lexer.SYSTEM:
		p.advance()
		return &ast.Identifier{Pos: pos, Name: "System"}
	case lexer.PRINT:
		p.advance()
		return &ast.Identifier{Pos: pos, Name: "print"}
	case lexer.INPUT:
		p.advance()
		return &ast.Identifier{Pos: pos, Name: "input"}
	case lexer.LBRACKET:
		return p.parseArrayLiteral()
	case lexer.LBRACE:
		return p.parseDictLiteral()
	case lexer.LPAREN:
		return p.parseParenOrTuple()
	case lexer.LAMBDA:
		return p.parseLambda()
	default:
		p.errorf(pos, "", "expected expression, found %s", p.cur.Type)
		p.advance()
		return &ast.Literal{Pos: pos, Value: nil}
	}
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	pos := p.pos()
	p.advance() // '['
	var elems []ast.Expr
	for p.cur.Type != lexer.RBRACKET && p.cur.Type != lexer.EOF {
		elems = append(elems, p.parseExpression())
		if p.cur.Type == lexer.COMMA {
			p.advance()
		}
	}
	p.expect(lexer.RBRACKET)
	p.advance()
	return &ast.Array{Pos: pos, Elements: elems}
}

func (p *Parser) parseDictLiteral() ast.Expr {
	pos := p.pos()
	p.advance() // '{'
	var entries []ast.DictEntry
	for p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		key := p.parseExpression()
		p.expect(lexer.COLON)
		p.advance()
		value := p.parseExpression()
		entries = append(entries, ast.DictEntry{Key: key, Value: value})
		if p.cur.Type == lexer.COMMA {
			p.advance()
		}
	}
	p.expect(lexer.RBRACE)
	p.advance()
	return &ast.Dict{Pos: pos, Entries: entries}
}

// parseParenOrTuple parses `(expr)` as a parenthesized expression, or
// `(a, b, ...)` with two or more elements as a Tuple literal.
func (p *Parser) parseParenOrTuple() ast.Expr {
	pos := p.pos()
	p.advance() // '('
	first := p.parseExpression()
	if p.cur.Type != lexer.COMMA {
		p.expect(lexer.RPAREN)
		p.advance()
		return first
	}
	elems := []ast.Expr{first}
	for p.cur.Type == lexer.COMMA {
		p.advance()
		if p.cur.Type == lexer.RPAREN {
			break
		}
		elems = append(elems, p.parseExpression())
	}
	p.expect(lexer.RPAREN)
	p.advance()
	return &ast.Tuple{Pos: pos, Elements: elems}
}

func (p *Parser) parseLambda() ast.Expr {
	pos := p.pos()
	p.advance() // 'lambda'
	var params []string
	parenWrapped := false
	if p.cur.Type == lexer.LPAREN {
		parenWrapped = true
		p.advance()
	}
	for p.cur.Type == lexer.IDENT {
		params = append(params, p.cur.Literal)
		p.advance()
		if p.cur.Type == lexer.COMMA {
			p.advance()
		} else {
			break
		}
	}
	if parenWrapped {
		p.expect(lexer.RPAREN)
		p.advance()
	}
	p.expect(lexer.ARROW)
	p.advance()
	body := p.parseExpression()
	return &ast.Lambda{Pos: pos, Params: params, Body: body}
}
