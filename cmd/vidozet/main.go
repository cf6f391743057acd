package main

import "vidozet/internal/cli"

func main() {
	cli.Execute()
}
