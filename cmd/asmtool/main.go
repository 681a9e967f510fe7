package main

import (
	"asmkit/internal/appshell"
	"asmkit/internal/cli"
)

func main() {
	appshell.Main(cli.Run)
}
