package main

import (
	"github.com/lumen-hq/lumen-cli/internal/cmd"
)

func main() {
	cmd.Execute()
}
