// cmd/biofx/main.go
package main

import (
	"biofx/internal/appshell"
	"biofx/internal/cli"
)

func main() {
	appshell.Main(cli.NewRootCmd())
}
