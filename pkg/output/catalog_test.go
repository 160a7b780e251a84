package output_test

import (
	"testing"

	"github.com/arthur-debert/sglint/pkg/output"
	"github.com/arthur-debert/sglint/pkg/rules"
	"github.com/stretchr/testify/assert"
)

func TestCatalogMarkdown(t *testing.T) {
	catalog := append(rules.SQLRules(), rules.ElmRules(rules.DefaultElmOptions())...)
	md := output.CatalogMarkdown(catalog)

	assert.Contains(t, md, "# sglint rules")
	assert.Contains(t, md, "## sql")
	assert.Contains(t, md, "## elm")
	assert.Contains(t, md, "`sql/keywords-uppercase` (error)")
	assert.Contains(t, md, "`sql/river-alignment` (advisory, not enforced)")
	assert.Contains(t, md, "`elm/module-namespace` (error)")
}

func TestCatalogMarkdownInternalSection(t *testing.T) {
	md := output.CatalogMarkdown(rules.MetaRules())
	assert.Contains(t, md, "## internal")
	assert.Contains(t, md, "`internal/scan-recovery`")
}

func TestRenderCatalogPlain(t *testing.T) {
	catalog := rules.SQLRules()
	// without color the raw Markdown comes back untouched
	assert.Equal(t, output.CatalogMarkdown(catalog), output.RenderCatalog(catalog, false))
}
