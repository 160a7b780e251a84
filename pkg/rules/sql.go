package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/sglint/pkg/types"
)

// SQLRules returns the SQL convention catalog in evaluation order
func SQLRules() []Rule {
	return []Rule{
		sqlKeywordsUppercase(),
		sqlExplicitInnerJoin(),
		sqlExplicitAs(),
		sqlExplicitAsc(),
		sqlExplicitNullability(),
		sqlJoinTableFirst(),
		sqlTableSingular(),
		sqlSnakeCase(),
		sqlBareColumn("id"),
		sqlBareColumn("version"),
		sqlRiverAlignment(),
	}
}

func sqlKeywordsUppercase() Rule {
	return Rule{
		ID:          "sql/keywords-uppercase",
		Language:    types.LangSQL,
		Description: "SQL keywords must be upper-cased",
		Severity:    types.SeverityError,
		Automatable: true,
		Doc:         "Keywords such as `SELECT`, `FROM`, and `NOT NULL` are written in upper case so that identifiers stand out in lower case.",
		Match: func(file *types.SourceFile) []Hit {
			var hits []Hit
			for _, tok := range file.Tokens {
				if tok.Kind != types.TokenKeyword {
					continue
				}
				if upper := strings.ToUpper(tok.Text); tok.Text != upper {
					hits = append(hits, hitAt(tok, fmt.Sprintf("SQL keyword %q must be written %q", tok.Text, upper)))
				}
			}
			return hits
		},
	}
}

// joinQualifiers are the keywords that may legitimately precede JOIN
var joinQualifiers = map[string]bool{
	"INNER": true, "LEFT": true, "RIGHT": true,
	"FULL": true, "OUTER": true, "CROSS": true, "NATURAL": true,
}

func sqlExplicitInnerJoin() Rule {
	return Rule{
		ID:          "sql/explicit-inner-join",
		Language:    types.LangSQL,
		Description: "Write INNER JOIN explicitly instead of bare JOIN",
		Severity:    types.SeverityWarning,
		Automatable: true,
		Doc:         "A bare `JOIN` defaults to an inner join; spelling out `INNER JOIN` keeps the join kind visible.",
		Match: func(file *types.SourceFile) []Hit {
			toks := stripComments(file.Tokens)
			var hits []Hit
			for i, tok := range toks {
				if keywordUpper(tok) != "JOIN" {
					continue
				}
				if i > 0 && joinQualifiers[keywordUpper(toks[i-1])] {
					continue
				}
				hits = append(hits, hitAt(tok, "bare JOIN is ambiguous; write INNER JOIN explicitly"))
			}
			return hits
		},
	}
}

// fromRegionEnders terminate the FROM/JOIN table list for the alias heuristic
var fromRegionEnders = map[string]bool{
	"ON": true, "WHERE": true, "GROUP": true, "ORDER": true, "HAVING": true,
	"SET": true, "SELECT": true, "UNION": true, "LIMIT": true, "OFFSET": true,
	"USING": true, "RETURNING": true,
}

func sqlExplicitAs() Rule {
	return Rule{
		ID:          "sql/explicit-as",
		Language:    types.LangSQL,
		Description: "Table aliases must be introduced with AS",
		Severity:    types.SeverityWarning,
		Automatable: true,
		Doc: "Aliases without `AS` read like typos: `FROM user u` becomes `FROM user AS u`.\n\n" +
			"Heuristic: two adjacent identifiers in a top-level FROM/JOIN table list. " +
			"Aliases in SELECT lists and inside subqueries are not checked.",
		Match: func(file *types.SourceFile) []Hit {
			toks := stripComments(file.Tokens)
			var hits []Hit
			depth := 0
			inFrom := false
			for i, tok := range toks {
				switch {
				case isPunct(tok, "("):
					depth++
				case isPunct(tok, ")"):
					depth--
				case isPunct(tok, ";"):
					inFrom = false
				}
				if up := keywordUpper(tok); up != "" {
					switch {
					case up == "FROM" || up == "JOIN":
						if depth == 0 {
							inFrom = true
						}
					case fromRegionEnders[up]:
						inFrom = false
					}
				}
				if inFrom && depth == 0 &&
					tok.Kind == types.TokenIdentifier &&
					i+1 < len(toks) && toks[i+1].Kind == types.TokenIdentifier {
					hits = append(hits, hitAt(toks[i+1], fmt.Sprintf("alias %q must be introduced with AS", toks[i+1].Text)))
				}
			}
			return hits
		},
	}
}

// orderRegionEnders terminate an ORDER BY expression list
var orderRegionEnders = map[string]bool{
	"LIMIT": true, "OFFSET": true, "UNION": true, "FOR": true,
}

func sqlExplicitAsc() Rule {
	return Rule{
		ID:          "sql/explicit-asc",
		Language:    types.LangSQL,
		Description: "ORDER BY expressions must state ASC or DESC explicitly",
		Severity:    types.SeverityWarning,
		Automatable: true,
		Doc: "Relying on the implicit ascending default hides the sort direction; every ORDER BY expression ends in `ASC` or `DESC`.\n\n" +
			"Heuristic: the expression list is tracked by parenthesis depth from ORDER BY to the enclosing clause boundary, " +
			"so the region inside a subquery or `OVER (...)` ends with its closing parenthesis. An expression whose last " +
			"token is a closing parenthesis (a bare function call) is reported at that parenthesis.",
		Match: func(file *types.SourceFile) []Hit {
			toks := stripComments(file.Tokens)
			var hits []Hit
			var prev types.Token
			inOrder := false
			havePrev := false
			depth := 0
			orderDepth := 0

			check := func() {
				if !havePrev {
					return
				}
				if up := keywordUpper(prev); up != "ASC" && up != "DESC" {
					hits = append(hits, hitAt(prev, "ORDER BY expression must state ASC or DESC explicitly"))
				}
				havePrev = false
			}

			for i, tok := range toks {
				switch {
				case isPunct(tok, "("):
					depth++
				case isPunct(tok, ")"):
					depth--
				}
				if inOrder {
					up := keywordUpper(tok)
					switch {
					case depth < orderDepth:
						// the parenthesis enclosing ORDER BY closed;
						// the region cannot outlive its subquery or
						// window definition
						check()
						inOrder = false
						continue
					case isPunct(tok, ",") && depth == orderDepth:
						check()
						continue
					case isPunct(tok, ";") || (depth == orderDepth && orderRegionEnders[up]):
						check()
						inOrder = false
						continue
					default:
						prev = tok
						havePrev = true
					}
				}
				if keywordUpper(tok) == "ORDER" && i+1 < len(toks) && keywordUpper(toks[i+1]) == "BY" {
					inOrder = true
					havePrev = false
					orderDepth = depth
				}
			}
			check()
			return hits
		},
	}
}

func sqlExplicitNullability() Rule {
	return Rule{
		ID:          "sql/explicit-nullability",
		Language:    types.LangSQL,
		Description: "Column definitions must state NULL or NOT NULL",
		Severity:    types.SeverityError,
		Automatable: true,
		Doc: "Every column in a `CREATE TABLE` carries an explicit `NULL` or `NOT NULL`.\n\n" +
			"Columns declared inline as `PRIMARY KEY` are exempt since the constraint implies NOT NULL.",
		Match: func(file *types.SourceFile) []Hit {
			var hits []Hit
			for _, col := range createTableColumns(stripComments(file.Tokens)) {
				hasNull := false
				hasPrimary := false
				for _, tok := range col.toks {
					switch keywordUpper(tok) {
					case "NULL":
						hasNull = true
					case "PRIMARY":
						hasPrimary = true
					}
				}
				if !hasNull && !hasPrimary {
					hits = append(hits, hitAt(col.name, fmt.Sprintf("column %q must state NULL or NOT NULL explicitly", col.name.Text)))
				}
			}
			return hits
		},
	}
}

func sqlJoinTableFirst() Rule {
	return Rule{
		ID:          "sql/join-table-first",
		Language:    types.LangSQL,
		Description: "The joined table must be referenced first in its ON clause",
		Severity:    types.SeverityWarning,
		Automatable: true,
		Doc: "In `JOIN account ON account.user_id = user.user_id` the freshly joined table leads the comparison.\n\n" +
			"Heuristic: the first qualified column after ON must be qualified by the joined " +
			"table or its alias. Subqueries and function calls inside ON clauses are not analyzed.",
		Match: matchJoinTableFirst,
	}
}

func matchJoinTableFirst(file *types.SourceFile) []Hit {
	toks := stripComments(file.Tokens)
	var hits []Hit

	terminates := func(tok types.Token) bool {
		up := keywordUpper(tok)
		return isPunct(tok, ";") || up == "JOIN" || up == "WHERE" ||
			up == "GROUP" || up == "ORDER" || up == "UNION" || up == "HAVING"
	}

	for i := 0; i < len(toks); i++ {
		if keywordUpper(toks[i]) != "JOIN" {
			continue
		}
		j := i + 1
		if j >= len(toks) || toks[j].Kind != types.TokenIdentifier {
			continue
		}
		tableTok := toks[j]
		names := map[string]bool{strings.ToLower(tableTok.Text): true}
		j++
		if j < len(toks) && keywordUpper(toks[j]) == "AS" {
			j++
		}
		if j < len(toks) && toks[j].Kind == types.TokenIdentifier {
			names[strings.ToLower(toks[j].Text)] = true
			j++
		}
		for j < len(toks) && keywordUpper(toks[j]) != "ON" && !terminates(toks[j]) {
			j++
		}
		if j >= len(toks) || keywordUpper(toks[j]) != "ON" {
			i = j - 1
			continue
		}
		for k := j + 1; k+1 < len(toks) && !terminates(toks[k]); k++ {
			if toks[k].Kind == types.TokenIdentifier && isPunct(toks[k+1], ".") {
				if !names[strings.ToLower(toks[k].Text)] {
					hits = append(hits, hitAt(toks[k],
						fmt.Sprintf("joined table %q must be referenced first in its ON clause", tableTok.Text)))
				}
				break
			}
		}
		i = j
	}
	return hits
}

// singularAllowlist holds table-name segments that end in "s" without
// being plural
var singularAllowlist = map[string]bool{
	"status": true, "alias": true, "news": true,
	"analysis": true, "basis": true, "series": true,
}

func sqlTableSingular() Rule {
	return Rule{
		ID:          "sql/table-singular",
		Language:    types.LangSQL,
		Description: "Table names must be singular",
		Severity:    types.SeverityWarning,
		Automatable: true,
		Doc: "`user`, not `users`; the table names the entity, not the collection.\n\n" +
			"Heuristic: the final underscore-separated segment must not end in a plural \"s\". " +
			"Uninflectable nouns outside the built-in allowlist are false positives.",
		Match: func(file *types.SourceFile) []Hit {
			var hits []Hit
			for _, tok := range sqlTableNames(stripComments(file.Tokens)) {
				name := strings.ToLower(tok.Text)
				seg := name
				if idx := strings.LastIndex(name, "_"); idx >= 0 {
					seg = name[idx+1:]
				}
				if len(seg) < 2 || !strings.HasSuffix(seg, "s") {
					continue
				}
				if strings.HasSuffix(seg, "ss") || singularAllowlist[seg] {
					continue
				}
				hits = append(hits, hitAt(tok, fmt.Sprintf("table name %q must be singular", tok.Text)))
			}
			return hits
		},
	}
}

var snakeCasePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func sqlSnakeCase() Rule {
	return Rule{
		ID:          "sql/snake-case-identifiers",
		Language:    types.LangSQL,
		Description: "Identifiers must be lower-case snake_case",
		Severity:    types.SeverityError,
		Automatable: true,
		Doc: "Table and column names are `snake_case`; quoted identifiers are unwrapped before the check.\n\n" +
			"Built-in functions are tokenized as keywords; calls to uppercase user-defined functions are false positives.",
		Match: func(file *types.SourceFile) []Hit {
			var hits []Hit
			for _, tok := range file.Tokens {
				if tok.Kind != types.TokenIdentifier {
					continue
				}
				name := strings.Trim(tok.Text, `"`)
				if name == "" || snakeCasePattern.MatchString(name) {
					continue
				}
				hits = append(hits, hitAt(tok, fmt.Sprintf("identifier %q must be snake_case", name)))
			}
			return hits
		},
	}
}

// sqlBareColumn builds the rules forbidding bare "id" and "version"
// columns: identifier columns carry the full entity prefix, so the user
// table holds user_id, never id.
func sqlBareColumn(bare string) Rule {
	return Rule{
		ID:          "sql/no-bare-" + bare,
		Language:    types.LangSQL,
		Description: fmt.Sprintf("Bare %q columns are forbidden; use the full entity prefix", bare),
		Severity:    types.SeverityError,
		Automatable: true,
		Doc: fmt.Sprintf("A column named just `%s` loses its meaning the moment it is joined or selected "+
			"into another context; `user_%s` stays unambiguous everywhere.", bare, bare),
		Match: func(file *types.SourceFile) []Hit {
			toks := stripComments(file.Tokens)
			var hits []Hit
			for _, col := range createTableColumns(toks) {
				if strings.EqualFold(col.name.Text, bare) {
					hits = append(hits, hitAt(col.name,
						fmt.Sprintf("bare column %q is forbidden; use %q", bare, col.table+"_"+bare)))
				}
			}
			for i := 0; i+2 < len(toks); i++ {
				if toks[i].Kind == types.TokenIdentifier && isPunct(toks[i+1], ".") &&
					toks[i+2].Kind == types.TokenIdentifier && strings.EqualFold(toks[i+2].Text, bare) {
					hits = append(hits, hitAt(toks[i+2],
						fmt.Sprintf("bare column %q is forbidden; use %q", bare, strings.ToLower(toks[i].Text)+"_"+bare)))
				}
			}
			return hits
		},
	}
}

func sqlRiverAlignment() Rule {
	return Rule{
		ID:          "sql/river-alignment",
		Language:    types.LangSQL,
		Description: "Align clauses on a river between keywords and expressions (advisory)",
		Severity:    types.SeverityWarning,
		Automatable: false,
		Doc:         "Whitespace alignment is a formatting judgment the token stream cannot arbitrate; the convention is documented here but never enforced.",
	}
}

// columnDef is one column entry of a CREATE TABLE body
type columnDef struct {
	name  types.Token
	toks  []types.Token
	table string
}

// createTableColumns extracts column definitions from every CREATE TABLE
// statement in the token stream. Constraint entries (PRIMARY KEY, CHECK,
// CONSTRAINT ...) start with a keyword and are skipped.
func createTableColumns(toks []types.Token) []columnDef {
	var defs []columnDef
	for i := 0; i+1 < len(toks); i++ {
		if keywordUpper(toks[i]) != "CREATE" || keywordUpper(toks[i+1]) != "TABLE" {
			continue
		}
		j := i + 2
		for j < len(toks) {
			up := keywordUpper(toks[j])
			if up != "IF" && up != "NOT" && up != "EXISTS" {
				break
			}
			j++
		}
		if j >= len(toks) || toks[j].Kind != types.TokenIdentifier {
			continue
		}
		table := strings.ToLower(strings.Trim(toks[j].Text, `"`))
		j++
		if j >= len(toks) || !isPunct(toks[j], "(") {
			continue
		}

		depth := 1
		segStart := j + 1
		appendSeg := func(end int) {
			seg := toks[segStart:end]
			if len(seg) > 0 && seg[0].Kind == types.TokenIdentifier {
				defs = append(defs, columnDef{name: seg[0], toks: seg, table: table})
			}
		}
		for k := j + 1; k < len(toks); k++ {
			switch {
			case isPunct(toks[k], "("):
				depth++
			case isPunct(toks[k], ")"):
				depth--
				if depth == 0 {
					appendSeg(k)
					i = k
					k = len(toks)
				}
			case isPunct(toks[k], ",") && depth == 1:
				appendSeg(k)
				segStart = k + 1
			}
		}
	}
	return defs
}

// sqlTableNames returns the tokens naming tables: the identifier after
// FROM, JOIN, INTO, UPDATE, or TABLE (skipping IF NOT EXISTS)
func sqlTableNames(toks []types.Token) []types.Token {
	var names []types.Token
	for i := 0; i+1 < len(toks); i++ {
		switch keywordUpper(toks[i]) {
		case "FROM", "JOIN", "INTO", "UPDATE", "TABLE":
			j := i + 1
			for j < len(toks) {
				up := keywordUpper(toks[j])
				if up != "IF" && up != "NOT" && up != "EXISTS" {
					break
				}
				j++
			}
			if j < len(toks) && toks[j].Kind == types.TokenIdentifier {
				names = append(names, toks[j])
			}
		}
	}
	return names
}
