package main

import "github.com/mcoot/shopsim/internal/cli"

func main() {
	cli.Execute()
}
