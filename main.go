package main

import "msys2-buildqueue/internal/cli"

func main() {
	cli.Execute()
}
