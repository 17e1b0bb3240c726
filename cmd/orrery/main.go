// Command orrery classifies stellar spectral types and evaluates JPL/INPOP
// planetary ephemerides from the terminal.
package main

import "github.com/nightfall/orrery/cmd/orrery/cmd"

func main() {
	cmd.Execute()
}
