package scanner

import (
	"strings"

	"github.com/arthur-debert/sglint/pkg/types"
)

// elmKeywords is matched case-sensitively: Elm keywords are lowercase,
// a capitalized word is always an identifier
var elmKeywords = map[string]bool{
	"module": true, "exposing": true, "import": true, "as": true,
	"port": true, "type": true, "alias": true, "let": true, "in": true,
	"if": true, "then": true, "else": true, "case": true, "of": true,
	"where": true, "infix": true,
}

// elmOperatorRunes are scanned as greedy runs, so "->", "|>", "::" and
// ".." come out as single punctuation tokens
const elmOperatorRunes = "!$%&*+./<=>?^|~-:\\"

const elmBrackets = "()[]{},;"

func elmRecognized(r rune) bool {
	return isSpace(r) || isAlpha(r) || isDigit(r) || r == '"' || r == '\'' ||
		strings.ContainsRune(elmOperatorRunes, r) || strings.ContainsRune(elmBrackets, r)
}

// ScanElm tokenizes Elm text. Qualified names (Json.Decode.list) are
// kept as single identifier tokens, which is what the namespace and
// decoder rules match on.
func ScanElm(text string) []types.Token {
	l := newLexer(text)
	for !l.eof() {
		r := l.peek(0)
		switch {
		case isSpace(r):
			l.advance()
		case r == '-' && l.peek(1) == '-':
			l.scanElmLineComment()
		case r == '{' && l.peek(1) == '-':
			l.scanElmBlockComment()
		case r == '"':
			l.scanElmString()
		case r == '\'':
			l.scanElmChar()
		case isAlpha(r):
			l.scanElmWord()
		case isDigit(r):
			l.scanNumber()
		case strings.ContainsRune(elmBrackets, r):
			start, line, col := l.mark()
			l.advance()
			l.emit(types.TokenPunctuation, start, line, col)
		case strings.ContainsRune(elmOperatorRunes, r):
			l.scanElmOperator()
		default:
			l.scanUnknown(elmRecognized)
		}
	}
	return l.tokens
}

func (l *lexer) scanElmLineComment() {
	start, line, col := l.mark()
	for !l.eof() && l.peek(0) != '\n' {
		l.advance()
	}
	l.emit(types.TokenComment, start, line, col)
}

// scanElmBlockComment consumes a {- -} comment, which nests. Doc
// comments ({-| ... -}) are ordinary comment tokens whose text starts
// with "{-|"; the port-documentation rule keys on that prefix.
func (l *lexer) scanElmBlockComment() {
	start, line, col := l.mark()
	l.advance()
	l.advance()
	depth := 1
	for !l.eof() && depth > 0 {
		switch {
		case l.peek(0) == '{' && l.peek(1) == '-':
			depth++
			l.advance()
			l.advance()
		case l.peek(0) == '-' && l.peek(1) == '}':
			depth--
			l.advance()
			l.advance()
		default:
			l.advance()
		}
	}
	l.emit(types.TokenComment, start, line, col)
}

func (l *lexer) scanElmString() {
	start, line, col := l.mark()
	if l.matchRun(`"""`) {
		l.advance()
		l.advance()
		l.advance()
		for !l.eof() && !l.matchRun(`"""`) {
			l.advance()
		}
		if !l.eof() {
			l.advance()
			l.advance()
			l.advance()
		}
		l.emit(types.TokenString, start, line, col)
		return
	}
	l.advance()
	for !l.eof() && l.peek(0) != '"' && l.peek(0) != '\n' {
		if l.peek(0) == '\\' && l.peek(1) != 0 {
			l.advance()
		}
		l.advance()
	}
	if l.peek(0) == '"' {
		l.advance()
	}
	l.emit(types.TokenString, start, line, col)
}

func (l *lexer) scanElmChar() {
	start, line, col := l.mark()
	l.advance()
	if l.peek(0) == '\\' && l.peek(1) != 0 {
		l.advance()
	}
	if !l.eof() {
		l.advance()
	}
	if l.peek(0) == '\'' {
		l.advance()
	}
	l.emit(types.TokenString, start, line, col)
}

// scanElmWord consumes an identifier or keyword. Capitalized words
// continue across dots into one qualified name.
func (l *lexer) scanElmWord() {
	start, line, col := l.mark()
	upper := l.peek(0) >= 'A' && l.peek(0) <= 'Z'
	l.scanElmWordPart()
	if upper {
		for l.peek(0) == '.' && isAlpha(l.peek(1)) {
			l.advance()
			l.scanElmWordPart()
		}
	}
	word := string(l.src[start:l.pos])
	kind := types.TokenIdentifier
	if elmKeywords[word] {
		kind = types.TokenKeyword
	}
	l.emit(kind, start, line, col)
}

func (l *lexer) scanElmWordPart() {
	for !l.eof() && (isAlpha(l.peek(0)) || isDigit(l.peek(0)) || l.peek(0) == '\'') {
		l.advance()
	}
}

func (l *lexer) scanElmOperator() {
	start, line, col := l.mark()
	for !l.eof() && strings.ContainsRune(elmOperatorRunes, l.peek(0)) {
		l.advance()
	}
	l.emit(types.TokenPunctuation, start, line, col)
}
