package main

import "github.com/rampctl/rampctl/pkg/cli"

func main() {
	cli.Execute()
}
