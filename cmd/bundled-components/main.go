package main

import "bundled-components/internal/cli"

func main() {
	cli.Execute()
}
