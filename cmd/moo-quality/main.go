package main

import (
	"os"

	"github.com/mihai-snyk/moo-quality/cmd/moo-quality/app"
	"k8s.io/component-base/cli"
)

func main() {
	command := app.NewCommand()
	code := cli.Run(command)
	os.Exit(code)
}
