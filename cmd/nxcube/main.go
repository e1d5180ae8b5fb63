// nxcube - turn, render and animate NxNxN twisty cubes from the command line.
package main

import (
	"github.com/SeamusWaldron/nxcube/internal/cli"
)

func main() {
	cli.Execute()
}
