package stackl

import (
	"fmt"
)

type TokenType string

// Token 是词法分析器产出的最小单元. Literal 是源码中对应的原始文本.
type Token struct {
	Type    TokenType
	Literal []byte
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("Line:%d, Col:%d, Type:%s, Literal:`%s`", t.Line, t.Column, t.Type, string(t.Literal))
}

const (
	// ERROR marks both end of input and an illegal character. The parser
	// treats either as a syntax error.
	ERROR     TokenType = "ERROR"
	IDENT     TokenType = "IDENT"
	INT       TokenType = "INT"
	ASSIGN    TokenType = "="
	SEMICOLON TokenType = ";"
	PLUS      TokenType = "+"
	MINUS     TokenType = "-"
	MULT      TokenType = "*"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	PRINT     TokenType = "PRINT"
	END       TokenType = "END"
)

var singleCharTokens = map[rune]TokenType{
	';': SEMICOLON,
	'=': ASSIGN,
	'+': PLUS,
	'-': MINUS,
	'*': MULT,
	'(': LPAREN,
	')': RPAREN,
}

var keywords = map[string]TokenType{
	"print": PRINT,
	"end":   END,
}

// LookupIdentifier 检查 ident 是否是关键字.
// map 以 string(ident) 为键查找时编译器不会分配新字符串.
func LookupIdentifier(ident []byte) TokenType {
	if tt, ok := keywords[string(ident)]; ok {
		return tt
	}
	return IDENT
}
