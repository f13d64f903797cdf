package main

import (
	"github.com/formgate/formgate/internal/cli"
)

func main() {
	cli.Execute()
}
