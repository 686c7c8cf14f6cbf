package main

import "github.com/depeter/scrubbar/internal/cli"

func main() {
	cli.Execute()
}
