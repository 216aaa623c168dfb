package main

import "github.com/workwatchhq/agent/internal/cli"

func main() {
	cli.Execute()
}
