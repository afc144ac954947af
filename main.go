// Command safespace is a terminal journaling companion: write entries with a
// mood, watch mood trends, breathe, and listen to ambient sounds.
package main

import "github.com/idilsaglam/safespace/internal/cli"

func main() {
	cli.Main()
}
