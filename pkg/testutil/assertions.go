// Package testutil provides small assertion helpers shared by tests that
// capture raw output (log lines, rendered reports) where the testify
// matchers would be heavier than needed.
package testutil

import (
	"fmt"
	"strings"
	"testing"
)

// AssertContains checks if a string contains a substring
func AssertContains(t *testing.T, str, substr string, msgAndArgs ...interface{}) {
	t.Helper()

	if !strings.Contains(str, substr) {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sString %q does not contain %q", msg, str, substr)
	}
}

func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok && len(msgAndArgs) > 1 {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + "\n"
	}
	return fmt.Sprint(msgAndArgs...) + "\n"
}
