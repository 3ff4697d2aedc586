package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertScriptReported checks that the output within a HarnessResult has a
// validation line with the given status ("OK" or "FAIL") for path.
func AssertScriptReported(t *testing.T, result *HarnessResult, status, path string) {
	t.Helper()

	prefix := fmt.Sprintf("%-4s %s", status, path)
	for _, line := range strings.Split(result.Output, "\n") {
		if strings.HasPrefix(line, prefix) {
			return
		}
	}
	require.Failf(t, "script not reported",
		"expected a %s line for %s in output:\n%s", status, path, result.Output)
}
