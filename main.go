// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/pkmake/pkmake/cmd/pkmake"

func main() {
	cmd.Execute()
}
