package scanner

import (
	"strings"

	"github.com/arthur-debert/sglint/pkg/types"
)

// sqlKeywords is the reserved-word and builtin-function vocabulary.
// Builtins are included so that casing rules cover them and naming
// rules skip them.
var sqlKeywords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true, "GROUP": true, "BY": true,
	"ORDER": true, "HAVING": true, "JOIN": true, "INNER": true, "LEFT": true,
	"RIGHT": true, "FULL": true, "OUTER": true, "CROSS": true, "NATURAL": true,
	"ON": true, "AS": true, "AND": true, "OR": true, "NOT": true, "NULL": true,
	"IS": true, "IN": true, "EXISTS": true, "IF": true, "CREATE": true,
	"TABLE": true, "PRIMARY": true, "FOREIGN": true, "KEY": true,
	"REFERENCES": true, "CONSTRAINT": true, "UNIQUE": true, "CHECK": true,
	"DEFAULT": true, "INSERT": true, "INTO": true, "VALUES": true,
	"UPDATE": true, "SET": true, "DELETE": true, "ASC": true, "DESC": true,
	"LIMIT": true, "OFFSET": true, "UNION": true, "ALL": true,
	"DISTINCT": true, "CASE": true, "WHEN": true, "THEN": true, "ELSE": true,
	"END": true, "BETWEEN": true, "LIKE": true, "ILIKE": true, "USING": true,
	"INDEX": true, "ALTER": true, "ADD": true, "DROP": true, "COLUMN": true,
	"VIEW": true, "WITH": true, "RECURSIVE": true, "RETURNING": true,
	"FOR": true, "COUNT": true, "SUM": true, "AVG": true, "MIN": true,
	"MAX": true, "COALESCE": true, "NULLIF": true, "CAST": true,
}

// sqlOperators lists multi-rune operators scanned before single punctuation
var sqlOperators = []string{"<=", ">=", "<>", "!=", "||", "::"}

const sqlSinglePunct = "()[]{},;.*=<>+-/%:$?!|"

func sqlRecognized(r rune) bool {
	return isSpace(r) || isAlpha(r) || isDigit(r) ||
		r == '\'' || r == '"' || strings.ContainsRune(sqlSinglePunct, r)
}

// ScanSQL tokenizes SQL text. Case is preserved verbatim; keyword
// classification is case-insensitive.
func ScanSQL(text string) []types.Token {
	l := newLexer(text)
	for !l.eof() {
		r := l.peek(0)
		switch {
		case isSpace(r):
			l.advance()
		case r == '-' && l.peek(1) == '-':
			l.scanSQLLineComment()
		case r == '/' && l.peek(1) == '*':
			l.scanSQLBlockComment()
		case r == '\'':
			l.scanSQLString()
		case r == '"':
			l.scanSQLQuotedIdentifier()
		case isAlpha(r):
			l.scanSQLWord()
		case isDigit(r):
			l.scanNumber()
		default:
			if !l.scanSQLOperator() {
				l.scanUnknown(sqlRecognized)
			}
		}
	}
	return l.tokens
}

func (l *lexer) scanSQLLineComment() {
	start, line, col := l.mark()
	for !l.eof() && l.peek(0) != '\n' {
		l.advance()
	}
	l.emit(types.TokenComment, start, line, col)
}

// scanSQLBlockComment consumes a /* */ comment; unterminated comments
// run to end of input rather than failing the scan
func (l *lexer) scanSQLBlockComment() {
	start, line, col := l.mark()
	l.advance()
	l.advance()
	for !l.eof() {
		if l.peek(0) == '*' && l.peek(1) == '/' {
			l.advance()
			l.advance()
			break
		}
		l.advance()
	}
	l.emit(types.TokenComment, start, line, col)
}

// scanSQLString consumes a single-quoted string with '' escaping
func (l *lexer) scanSQLString() {
	start, line, col := l.mark()
	l.advance()
	for !l.eof() {
		if l.peek(0) == '\'' {
			if l.peek(1) == '\'' {
				l.advance()
				l.advance()
				continue
			}
			l.advance()
			break
		}
		l.advance()
	}
	l.emit(types.TokenString, start, line, col)
}

// scanSQLQuotedIdentifier consumes a "quoted" identifier; the quotes
// stay in the token text
func (l *lexer) scanSQLQuotedIdentifier() {
	start, line, col := l.mark()
	l.advance()
	for !l.eof() && l.peek(0) != '"' {
		l.advance()
	}
	if !l.eof() {
		l.advance()
	}
	l.emit(types.TokenIdentifier, start, line, col)
}

func (l *lexer) scanSQLWord() {
	start, line, col := l.mark()
	for !l.eof() && (isAlpha(l.peek(0)) || isDigit(l.peek(0)) || l.peek(0) == '$') {
		l.advance()
	}
	word := string(l.src[start:l.pos])
	kind := types.TokenIdentifier
	if sqlKeywords[strings.ToUpper(word)] {
		kind = types.TokenKeyword
	}
	l.emit(kind, start, line, col)
}

func (l *lexer) scanSQLOperator() bool {
	for _, op := range sqlOperators {
		if l.matchRun(op) {
			start, line, col := l.mark()
			for range op {
				l.advance()
			}
			l.emit(types.TokenPunctuation, start, line, col)
			return true
		}
	}
	if strings.ContainsRune(sqlSinglePunct, l.peek(0)) {
		start, line, col := l.mark()
		l.advance()
		l.emit(types.TokenPunctuation, start, line, col)
		return true
	}
	return false
}

// matchRun reports whether the upcoming runes spell s
func (l *lexer) matchRun(s string) bool {
	for i, r := range []rune(s) {
		if l.peek(i) != r {
			return false
		}
	}
	return true
}
