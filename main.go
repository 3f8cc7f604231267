package main

import "github.com/Godevs04/tunesnip/internal/cli"

func main() {
	cli.Execute()
}
