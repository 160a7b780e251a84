package rules

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/sglint/pkg/types"
)

// ElmOptions configures the namespace rule. The zero value is replaced
// by DefaultElmOptions.
type ElmOptions struct {
	// NamespacePrefixes are the allowed dotted module prefixes, e.g. "Views."
	NamespacePrefixes []string

	// ApprovedModules are top-level module names allowed without a prefix
	ApprovedModules []string
}

// DefaultElmOptions returns the namespace configuration from the style guide
func DefaultElmOptions() ElmOptions {
	return ElmOptions{
		NamespacePrefixes: []string{"Views.", "Util.", "Types.", "Pages.", "Api.", "Routes."},
		ApprovedModules:   []string{"Main", "App"},
	}
}

// ElmRules returns the Elm convention catalog in evaluation order
func ElmRules(opts ElmOptions) []Rule {
	if len(opts.NamespacePrefixes) == 0 && len(opts.ApprovedModules) == 0 {
		opts = DefaultElmOptions()
	}
	return []Rule{
		elmModuleNamespace(opts),
		elmModuleFileMatch(),
		elmDecoderNaming(),
		elmNoPluralDecoder(),
		elmPortDocs(),
		elmNoExposingAll(),
		elmPreferCaseOf(),
		elmSmallLetBindings(),
	}
}

// moduleNameToken returns the token holding the declared module name,
// or false when the file has no module header
func moduleNameToken(toks []types.Token) (types.Token, bool) {
	for i, tok := range toks {
		if keywordUpper(tok) != "MODULE" {
			continue
		}
		if i+1 < len(toks) && toks[i+1].Kind == types.TokenIdentifier {
			return toks[i+1], true
		}
		return types.Token{}, false
	}
	return types.Token{}, false
}

func elmModuleNamespace(opts ElmOptions) Rule {
	return Rule{
		ID:          "elm/module-namespace",
		Language:    types.LangElm,
		Description: "Module names must live under an approved namespace prefix",
		Severity:    types.SeverityError,
		Automatable: true,
		Doc: fmt.Sprintf("Modules live under one of the configured prefixes (default: %s) or carry an "+
			"approved top-level name (default: %s).\n\nWhen a name could satisfy both an approved "+
			"top-level name and a prefix, the exact name wins; among prefixes the longest match wins.",
			strings.Join(DefaultElmOptions().NamespacePrefixes, ", "),
			strings.Join(DefaultElmOptions().ApprovedModules, ", ")),
		Match: func(file *types.SourceFile) []Hit {
			toks := stripComments(file.Tokens)
			nameTok, ok := moduleNameToken(toks)
			if !ok {
				return nil
			}
			name := nameTok.Text
			for _, approved := range opts.ApprovedModules {
				if name == approved {
					return nil
				}
			}
			// Longest-prefix match wins; any match accepts the module.
			best := ""
			for _, prefix := range opts.NamespacePrefixes {
				if strings.HasPrefix(name, prefix) && len(prefix) > len(best) {
					best = prefix
				}
			}
			if best != "" {
				return nil
			}
			return []Hit{hitAt(nameTok, fmt.Sprintf(
				"module %q does not match an approved namespace prefix (%s) or approved module name (%s)",
				name, strings.Join(opts.NamespacePrefixes, ", "), strings.Join(opts.ApprovedModules, ", ")))}
		},
	}
}

func elmModuleFileMatch() Rule {
	return Rule{
		ID:          "elm/module-file-match",
		Language:    types.LangElm,
		Description: "Module names must match their file path",
		Severity:    types.SeverityWarning,
		Automatable: true,
		Doc:         "`module Views.Button` belongs in `Views/Button.elm`; the compiler enforces this per source directory, the linter enforces it per repository.",
		Match: func(file *types.SourceFile) []Hit {
			toks := stripComments(file.Tokens)
			nameTok, ok := moduleNameToken(toks)
			if !ok {
				return nil
			}
			want := strings.ReplaceAll(nameTok.Text, ".", "/") + ".elm"
			path := strings.ReplaceAll(file.Path, "\\", "/")
			if strings.HasSuffix(path, want) {
				return nil
			}
			return []Hit{hitAt(nameTok, fmt.Sprintf("module %q does not match file path %q", nameTok.Text, file.Path))}
		},
	}
}

// decoderDecl is a top-level annotation whose type mentions Decoder
type decoderDecl struct {
	name    types.Token
	hasList bool
}

// decoderDecls finds top-level type annotations returning a Decoder.
// A top-level annotation is an identifier at column 1 followed by ":";
// the annotation region runs until the next column-1 token.
func decoderDecls(toks []types.Token) []decoderDecl {
	var decls []decoderDecl
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if tok.Kind != types.TokenIdentifier || tok.Column != 1 {
			continue
		}
		if i+1 >= len(toks) || !isPunct(toks[i+1], ":") {
			continue
		}
		decl := decoderDecl{name: tok}
		isDecoder := false
		j := i + 2
		for ; j < len(toks) && toks[j].Column != 1; j++ {
			text := toks[j].Text
			if text == "Decoder" || strings.HasSuffix(text, ".Decoder") {
				isDecoder = true
			}
			if text == "List" || strings.HasSuffix(text, ".List") {
				decl.hasList = true
			}
		}
		if isDecoder {
			decls = append(decls, decl)
		}
		i = j - 1
	}
	return decls
}

func elmDecoderNaming() Rule {
	return Rule{
		ID:          "elm/decoder-naming",
		Language:    types.LangElm,
		Description: "Decoders are named \"decoder\" or \"<field>Decoder\"",
		Severity:    types.SeverityWarning,
		Automatable: true,
		Doc: "The decoder for the module's own type is plain `decoder`; decoders for fields " +
			"are `<field>Decoder`. Anything else hides what the function produces.",
		Match: func(file *types.SourceFile) []Hit {
			var hits []Hit
			for _, decl := range decoderDecls(stripComments(file.Tokens)) {
				name := decl.name.Text
				if name == "decoder" || strings.HasSuffix(name, "Decoder") {
					continue
				}
				hits = append(hits, hitAt(decl.name, fmt.Sprintf(
					"function %q returns a Decoder; name it %q or \"decoder\"", name, name+"Decoder")))
			}
			return hits
		},
	}
}

func elmNoPluralDecoder() Rule {
	return Rule{
		ID:          "elm/no-plural-decoder",
		Language:    types.LangElm,
		Description: "List decoders keep the singular name",
		Severity:    types.SeverityWarning,
		Automatable: true,
		Doc: "Decoding a list does not pluralize the decoder: `userDecoder` combined with " +
			"`Decode.list` at the call site, never `usersDecoder`.",
		Match: func(file *types.SourceFile) []Hit {
			var hits []Hit
			for _, decl := range decoderDecls(stripComments(file.Tokens)) {
				name := decl.name.Text
				if !decl.hasList || !strings.HasSuffix(name, "sDecoder") || name == "sDecoder" {
					continue
				}
				singular := strings.TrimSuffix(name, "sDecoder") + "Decoder"
				hits = append(hits, hitAt(decl.name, fmt.Sprintf(
					"decoder for a list keeps the singular name; use %q with Decode.list at the call site", singular)))
			}
			return hits
		},
	}
}

func elmPortDocs() Rule {
	return Rule{
		ID:          "elm/port-docs",
		Language:    types.LangElm,
		Description: "Ports must have a documentation comment",
		Severity:    types.SeverityWarning,
		Automatable: true,
		Doc:         "Ports are the JavaScript boundary; each one carries a `{-| ... -}` comment saying who talks over it and why.",
		Match: func(file *types.SourceFile) []Hit {
			toks := file.Tokens // comments matter here
			var hits []Hit
			for i, tok := range toks {
				if keywordUpper(tok) != "PORT" {
					continue
				}
				if i+1 >= len(toks) || keywordUpper(toks[i+1]) == "MODULE" {
					continue
				}
				if i > 0 && toks[i-1].Kind == types.TokenComment && strings.HasPrefix(toks[i-1].Text, "{-|") {
					continue
				}
				nameTok := toks[i+1]
				hits = append(hits, hitAt(nameTok, fmt.Sprintf("port %q must have a documentation comment", nameTok.Text)))
			}
			return hits
		},
	}
}

func elmNoExposingAll() Rule {
	return Rule{
		ID:          "elm/no-exposing-all",
		Language:    types.LangElm,
		Description: "Modules must not expose everything",
		Severity:    types.SeverityWarning,
		Automatable: true,
		Doc: "`exposing (..)` in the module header makes the public surface invisible; " +
			"list the exposed names. Imports are free to use `(..)`.",
		Match: func(file *types.SourceFile) []Hit {
			toks := stripComments(file.Tokens)
			for i, tok := range toks {
				if keywordUpper(tok) == "IMPORT" {
					break
				}
				if keywordUpper(tok) != "EXPOSING" {
					continue
				}
				if i+3 < len(toks) && isPunct(toks[i+1], "(") &&
					toks[i+2].Text == ".." && isPunct(toks[i+3], ")") {
					return []Hit{hitAt(toks[i+2], "module must not expose everything; list the exposed names")}
				}
			}
			return nil
		},
	}
}

func elmPreferCaseOf() Rule {
	return Rule{
		ID:          "elm/prefer-case-of",
		Language:    types.LangElm,
		Description: "Prefer case..of over if..then..else (advisory)",
		Severity:    types.SeverityWarning,
		Automatable: false,
		Doc:         "Whether a conditional reads better as `case..of` is a judgment about the shape of the data, not a token pattern; documented, never enforced.",
	}
}

func elmSmallLetBindings() Rule {
	return Rule{
		ID:          "elm/small-let-bindings",
		Language:    types.LangElm,
		Description: "Extract let bindings that grow too large (advisory)",
		Severity:    types.SeverityWarning,
		Automatable: false,
		Doc:         "\"Too large\" is a structural judgment about a binding's role; documented, never enforced.",
	}
}
