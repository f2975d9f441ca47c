package main

import (
	"stackctl/cmd"
)

// version is overridden at release time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
