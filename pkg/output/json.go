package output

import (
	"encoding/json"

	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/arthur-debert/sglint/pkg/types"
)

// JSONRenderer renders the report as indented JSON for machine
// consumers that are not SARIF-aware
type JSONRenderer struct{}

func (r *JSONRenderer) Render(rep *types.Report) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode report as JSON")
	}
	return string(data) + "\n", nil
}
