package main

import "github.com/mvp-joe/synopsis/internal/cli"

func main() {
	cli.Execute()
}
