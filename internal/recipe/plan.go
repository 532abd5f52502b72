// SPDX-License-Identifier: MPL-2.0

package recipe

import "strings"

// Separator joins the commands of a plan into one shell script. Each command
// runs regardless of whether the previous one failed.
const Separator = " ; "

// Plan is the ordered list of shell commands compiled for a request.
type Plan []string

// Script returns the commands joined into a single shell script.
func (p Plan) Script() string {
	return strings.Join(p, Separator)
}

// Len returns the number of commands in the plan.
func (p Plan) Len() int { return len(p) }
