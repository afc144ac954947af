package main

import "github.com/idilsaglam/safespace/internal/cli"

func main() {
	cli.Main()
}
