package main

import "vpaas/internal/cli"

func main() {
	cli.Execute()
}
