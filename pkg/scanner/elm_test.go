package scanner

import (
	"testing"

	"github.com/arthur-debert/sglint/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanElmModuleHeader(t *testing.T) {
	tokens := ScanElm("module Views.Login exposing (view)")

	assert.Equal(t, []string{"module", "Views.Login", "exposing", "(", "view", ")"}, texts(tokens))
	assert.Equal(t, types.TokenKeyword, tokens[0].Kind)
	assert.Equal(t, types.TokenIdentifier, tokens[1].Kind)
	assert.Equal(t, types.TokenKeyword, tokens[2].Kind)
}

func TestScanElmQualifiedNames(t *testing.T) {
	t.Run("capitalized chains join", func(t *testing.T) {
		tokens := ScanElm("Json.Decode.list userDecoder")
		assert.Equal(t, []string{"Json.Decode.list", "userDecoder"}, texts(tokens))
	})

	t.Run("lowercase names do not chain", func(t *testing.T) {
		tokens := ScanElm("record.field")
		assert.Equal(t, []string{"record", ".", "field"}, texts(tokens))
	})
}

func TestScanElmKeywordsAreCaseSensitive(t *testing.T) {
	tokens := ScanElm("type Module = Module")

	require.Len(t, tokens, 4)
	assert.Equal(t, types.TokenKeyword, tokens[0].Kind)
	// "Module" is capitalized, so it is never the "module" keyword
	assert.Equal(t, types.TokenIdentifier, tokens[1].Kind)
	assert.Equal(t, types.TokenIdentifier, tokens[3].Kind)
}

func TestScanElmOperators(t *testing.T) {
	t.Run("arrow and pipe", func(t *testing.T) {
		tokens := ScanElm("a -> b |> c")
		assert.Equal(t, []string{"a", "->", "b", "|>", "c"}, texts(tokens))
	})

	t.Run("exposing all double dot", func(t *testing.T) {
		tokens := ScanElm("exposing (..)")
		assert.Equal(t, []string{"exposing", "(", "..", ")"}, texts(tokens))
	})

	t.Run("type annotation colon", func(t *testing.T) {
		tokens := ScanElm("view : Model -> Html Msg")
		assert.Equal(t, []string{"view", ":", "Model", "->", "Html", "Msg"}, texts(tokens))
	})
}

func TestScanElmComments(t *testing.T) {
	t.Run("line comment", func(t *testing.T) {
		tokens := ScanElm("x = 1 -- note\ny = 2")
		var comment types.Token
		for _, tok := range tokens {
			if tok.Kind == types.TokenComment {
				comment = tok
			}
		}
		assert.Equal(t, "-- note", comment.Text)
		assert.Contains(t, texts(tokens), "y")
	})

	t.Run("nested block comment", func(t *testing.T) {
		tokens := ScanElm("{- outer {- inner -} still outer -} x")
		require.Len(t, tokens, 2)
		assert.Equal(t, types.TokenComment, tokens[0].Kind)
		assert.Equal(t, "{- outer {- inner -} still outer -}", tokens[0].Text)
		assert.Equal(t, "x", tokens[1].Text)
	})

	t.Run("doc comment keeps its prefix", func(t *testing.T) {
		tokens := ScanElm("{-| Sends the payload out. -}\nport send : String -> Cmd msg")
		require.NotEmpty(t, tokens)
		assert.Equal(t, types.TokenComment, tokens[0].Kind)
		assert.True(t, len(tokens[0].Text) >= 3 && tokens[0].Text[:3] == "{-|")
	})

	t.Run("unterminated block comment", func(t *testing.T) {
		tokens := ScanElm("{- never closed")
		require.Len(t, tokens, 1)
		assert.Equal(t, types.TokenComment, tokens[0].Kind)
	})
}

func TestScanElmStrings(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		tokens := ScanElm(`greet = "hello"`)
		require.Len(t, tokens, 3)
		assert.Equal(t, types.TokenString, tokens[2].Kind)
		assert.Equal(t, `"hello"`, tokens[2].Text)
	})

	t.Run("escaped quote", func(t *testing.T) {
		tokens := ScanElm(`x = "a \" b"`)
		require.Len(t, tokens, 3)
		assert.Equal(t, `"a \" b"`, tokens[2].Text)
	})

	t.Run("triple quoted", func(t *testing.T) {
		tokens := ScanElm("x = \"\"\"multi\nline\"\"\"")
		require.Len(t, tokens, 3)
		assert.Equal(t, types.TokenString, tokens[2].Kind)
		assert.Equal(t, "\"\"\"multi\nline\"\"\"", tokens[2].Text)
	})

	t.Run("char literal", func(t *testing.T) {
		tokens := ScanElm("x = 'a'")
		require.Len(t, tokens, 3)
		assert.Equal(t, types.TokenString, tokens[2].Kind)
		assert.Equal(t, "'a'", tokens[2].Text)
	})
}

func TestScanElmPositions(t *testing.T) {
	tokens := ScanElm("module Main exposing (main)\n\nmain =\n    text")

	// keep the last occurrence, so "main" maps to its definition site
	byText := map[string]types.Token{}
	for _, tok := range tokens {
		byText[tok.Text] = tok
	}

	assert.Equal(t, 1, byText["module"].Line)
	assert.Equal(t, 1, byText["module"].Column)
	assert.Equal(t, 8, byText["Main"].Column)
	assert.Equal(t, 3, byText["main"].Line)
	assert.Equal(t, 1, byText["main"].Column)
	assert.Equal(t, 4, byText["text"].Line)
	assert.Equal(t, 5, byText["text"].Column)
}

func TestScanElmPrimedIdentifiers(t *testing.T) {
	tokens := ScanElm("model' = update model")
	assert.Equal(t, "model'", tokens[0].Text)
}

func TestScanElmEmptyInput(t *testing.T) {
	assert.Empty(t, ScanElm(""))
}

func TestScanElmNeverPanics(t *testing.T) {
	inputs := []string{
		`"`,
		`"""`,
		"{-",
		"'",
		"'\\",
		"\x00\x01",
		"§§§",
		"\\",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			ScanElm(input)
		})
	}
}

func TestScanDispatch(t *testing.T) {
	assert.NotEmpty(t, Scan("SELECT 1", types.LangSQL))
	assert.NotEmpty(t, Scan("module Main exposing (main)", types.LangElm))
	assert.Nil(t, Scan("anything", types.Language("ruby")))
}
