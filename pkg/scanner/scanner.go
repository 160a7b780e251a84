// Package scanner provides the coarse per-language lexers. They split
// source text into keyword/identifier/string/number/punctuation/comment
// tokens with 1-based positions — just enough structure for pattern
// rules, deliberately far short of a parser.
//
// Scanning is total: no input aborts a scan. Byte sequences neither
// scanner recognizes are emitted as TokenUnknown runs so the rules can
// still work the recognizable portion of the file.
package scanner

import (
	"github.com/arthur-debert/sglint/pkg/types"
)

// Scan tokenizes text for the given language. Languages without a
// scanner yield a nil token stream; the pipeline reports those files
// separately.
func Scan(text string, lang types.Language) []types.Token {
	switch lang {
	case types.LangSQL:
		return ScanSQL(text)
	case types.LangElm:
		return ScanElm(text)
	default:
		return nil
	}
}

// lexer tracks a rune cursor with 1-based line/column accounting.
// Columns count runes, not bytes, so positions stay sane on multi-byte
// input.
type lexer struct {
	src    []rune
	pos    int
	line   int
	col    int
	tokens []types.Token
}

func newLexer(text string) *lexer {
	return &lexer{src: []rune(text), line: 1, col: 1}
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.src)
}

// peek returns the rune at offset from the cursor, or 0 past the end
func (l *lexer) peek(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

// advance consumes one rune and returns it
func (l *lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// mark snapshots the current position for the token about to be scanned
func (l *lexer) mark() (start, line, col int) {
	return l.pos, l.line, l.col
}

// emit appends a token spanning from start to the cursor
func (l *lexer) emit(kind types.TokenKind, start, line, col int) {
	l.tokens = append(l.tokens, types.Token{
		Kind:   kind,
		Text:   string(l.src[start:l.pos]),
		Line:   line,
		Column: col,
	})
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// scanNumber consumes an integer, decimal, exponent, or hex literal
func (l *lexer) scanNumber() {
	start, line, col := l.mark()
	if l.peek(0) == '0' && (l.peek(1) == 'x' || l.peek(1) == 'X') {
		l.advance()
		l.advance()
		for !l.eof() && (isDigit(l.peek(0)) || (l.peek(0) >= 'a' && l.peek(0) <= 'f') || (l.peek(0) >= 'A' && l.peek(0) <= 'F')) {
			l.advance()
		}
		l.emit(types.TokenNumber, start, line, col)
		return
	}
	for !l.eof() && isDigit(l.peek(0)) {
		l.advance()
	}
	if l.peek(0) == '.' && isDigit(l.peek(1)) {
		l.advance()
		for !l.eof() && isDigit(l.peek(0)) {
			l.advance()
		}
	}
	if l.peek(0) == 'e' || l.peek(0) == 'E' {
		next := l.peek(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peek(2))) {
			l.advance()
			if l.peek(0) == '+' || l.peek(0) == '-' {
				l.advance()
			}
			for !l.eof() && isDigit(l.peek(0)) {
				l.advance()
			}
		}
	}
	l.emit(types.TokenNumber, start, line, col)
}

// scanUnknown coalesces a run of unrecognized runes into one token.
// recognized reports whether a rune starts any known token class.
func (l *lexer) scanUnknown(recognized func(rune) bool) {
	start, line, col := l.mark()
	for !l.eof() && !recognized(l.peek(0)) {
		l.advance()
	}
	l.emit(types.TokenUnknown, start, line, col)
}
