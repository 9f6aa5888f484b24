package stackl

import (
	"fmt"
)

// SyntaxError reports the first token that does not fit the grammar. Lexical
// problems (illegal characters, input ending early) are reported the same way.
type SyntaxError struct {
	Line     int       `json:"line"`
	Column   int       `json:"column"`
	Expected TokenType `json:"expected,omitempty"`
	Found    TokenType `json:"found"`
	Literal  string    `json:"literal"`
	Message  string    `json:"message"`
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error: line %d:%d: %s", e.Line, e.Column, e.Message)
}

// Parser translates L into S in a single pass. Grammar:
//
//	Statements = Statement ";" Statements | "end"
//	Statement  = id "=" Expr | "print" id
//	Expr       = Term | Term "+" Expr | Term "-" Expr
//	Term       = Factor | Factor "*" Term
//	Factor     = int | id | "(" Expr ")"
//
// Expr and Term are right-recursive, so "a - b - c" is translated as
// "a - (b - c)".
type Parser struct {
	l        TokenSource
	out      Emitter
	curToken Token
}

func NewParser(l TokenSource, out Emitter) *Parser {
	return &Parser{l: l, out: out}
}

// Parse translates the whole token stream. Instructions of every statement
// whose terminating ";" was matched are flushed to the emitter before the
// next statement is read, so they survive a later syntax error.
func (p *Parser) Parse() error {
	if err := p.nextToken(); err != nil {
		return err
	}
	if err := p.parseStatements(); err != nil {
		return err
	}
	if err := p.out.Close(); err != nil {
		return fmt.Errorf("write instructions: %w", err)
	}
	return nil
}

func (p *Parser) nextToken() error {
	p.curToken = p.l.NextToken()
	if p.curToken.Type != ERROR {
		return nil
	}
	msg := "unexpected end of input"
	if len(p.curToken.Literal) > 0 {
		msg = fmt.Sprintf("illegal character %q", p.curToken.Literal)
	}
	return p.errorf("", "%s", msg)
}

func (p *Parser) errorf(expected TokenType, format string, args ...any) error {
	return &SyntaxError{
		Line:     p.curToken.Line,
		Column:   p.curToken.Column,
		Expected: expected,
		Found:    p.curToken.Type,
		Literal:  string(p.curToken.Literal),
		Message:  fmt.Sprintf(format, args...),
	}
}

func (p *Parser) unexpected(want string) error {
	return p.errorf("", "expected %s, got %s (%q)", want, p.curToken.Type, p.curToken.Literal)
}

func (p *Parser) mismatch(tt TokenType) error {
	return p.errorf(tt, "expected %s, got %s (%q)", tt, p.curToken.Type, p.curToken.Literal)
}

// eat consumes the current token if it has type tt and returns its literal.
func (p *Parser) eat(tt TokenType) ([]byte, error) {
	if p.curToken.Type != tt {
		return nil, p.mismatch(tt)
	}
	literal := p.curToken.Literal
	return literal, p.nextToken()
}

func (p *Parser) emit(ins Instruction) error {
	if err := p.out.Emit(ins); err != nil {
		return fmt.Errorf("write instructions: %w", err)
	}
	return nil
}

// parseStatements stops on "end" without reading past it. A statement is
// flushed once its ";" is seen, before the token after it is requested.
func (p *Parser) parseStatements() error {
	for p.curToken.Type != END {
		if err := p.parseStatement(); err != nil {
			return err
		}
		if p.curToken.Type != SEMICOLON {
			return p.mismatch(SEMICOLON)
		}
		if err := p.out.Flush(); err != nil {
			return fmt.Errorf("write instructions: %w", err)
		}
		if err := p.nextToken(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseStatement() error {
	switch p.curToken.Type {
	case IDENT:
		name, err := p.eat(IDENT)
		if err != nil {
			return err
		}
		// 先压入变量名, ASSIGN 执行时它位于右值之下.
		if err := p.emit(Push(string(name))); err != nil {
			return err
		}
		if _, err := p.eat(ASSIGN); err != nil {
			return err
		}
		if err := p.parseExpr(); err != nil {
			return err
		}
		return p.emit(Instruction{Op: OpAssign})
	case PRINT:
		if _, err := p.eat(PRINT); err != nil {
			return err
		}
		name, err := p.eat(IDENT)
		if err != nil {
			return err
		}
		if err := p.emit(Push(string(name))); err != nil {
			return err
		}
		return p.emit(Instruction{Op: OpPrint})
	default:
		return p.unexpected("statement")
	}
}

func (p *Parser) parseExpr() error {
	if err := p.parseTerm(); err != nil {
		return err
	}
	var op Opcode
	switch p.curToken.Type {
	case PLUS:
		op = OpAdd
	case MINUS:
		op = OpSub
	default:
		return nil
	}
	if err := p.nextToken(); err != nil {
		return err
	}
	if err := p.parseExpr(); err != nil {
		return err
	}
	return p.emit(Instruction{Op: op})
}

func (p *Parser) parseTerm() error {
	if err := p.parseFactor(); err != nil {
		return err
	}
	if p.curToken.Type != MULT {
		return nil
	}
	if err := p.nextToken(); err != nil {
		return err
	}
	if err := p.parseTerm(); err != nil {
		return err
	}
	return p.emit(Instruction{Op: OpMult})
}

func (p *Parser) parseFactor() error {
	switch p.curToken.Type {
	case INT, IDENT:
		literal, err := p.eat(p.curToken.Type)
		if err != nil {
			return err
		}
		return p.emit(Push(string(literal)))
	case LPAREN:
		if _, err := p.eat(LPAREN); err != nil {
			return err
		}
		if err := p.parseExpr(); err != nil {
			return err
		}
		_, err := p.eat(RPAREN)
		return err
	default:
		return p.unexpected("integer, identifier or (")
	}
}
