package output

import (
	"fmt"

	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/arthur-debert/sglint/pkg/types"
	"github.com/beevik/etree"
)

// CheckstyleRenderer renders the Checkstyle XML format understood by
// most CI annotation plugins
type CheckstyleRenderer struct{}

func (r *CheckstyleRenderer) Render(rep *types.Report) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("checkstyle")
	root.CreateAttr("version", "4.3")

	var fileElem *etree.Element
	lastPath := ""
	for _, v := range rep.Violations {
		if v.Path != lastPath || fileElem == nil {
			fileElem = root.CreateElement("file")
			fileElem.CreateAttr("name", v.Path)
			lastPath = v.Path
		}
		errElem := fileElem.CreateElement("error")
		errElem.CreateAttr("line", fmt.Sprintf("%d", v.Line))
		errElem.CreateAttr("column", fmt.Sprintf("%d", v.Column))
		errElem.CreateAttr("severity", string(v.Severity))
		errElem.CreateAttr("message", v.Message)
		errElem.CreateAttr("source", "sglint."+v.RuleID)
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode checkstyle XML")
	}
	return out, nil
}
