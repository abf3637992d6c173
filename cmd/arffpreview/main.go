package main

import "github.com/shandysiswandi/arffview/internal/cli"

func main() {
	cli.Execute()
}
