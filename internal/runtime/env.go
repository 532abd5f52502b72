// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"os"
	"strings"
)

// buildEnv returns the process environment with ctx.ExtraEnv layered on top.
func buildEnv(ctx *ExecutionContext) map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	for k, v := range ctx.ExtraEnv {
		env[k] = v
	}
	return env
}
