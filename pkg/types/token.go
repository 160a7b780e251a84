package types

// TokenKind classifies a coarse lexical unit
type TokenKind string

const (
	TokenKeyword     TokenKind = "keyword"
	TokenIdentifier  TokenKind = "identifier"
	TokenString      TokenKind = "string"
	TokenNumber      TokenKind = "number"
	TokenPunctuation TokenKind = "punctuation"
	TokenComment     TokenKind = "comment"
	TokenUnknown     TokenKind = "unknown"
)

// Token is a coarse lexical unit with its 1-based source position.
// Text is preserved verbatim; case normalization is a rule concern.
type Token struct {
	Kind   TokenKind
	Text   string
	Line   int
	Column int
}

// SourceFile is one input to a lint run: an already-read file plus the
// token stream its scanner produced. Read-only after scanning.
type SourceFile struct {
	Path     string
	Language Language
	Content  string
	Tokens   []Token
}
