package main

import "github.com/example/yoyaku-web/internal/interfaces/cli"

func main() {
	cli.Execute()
}
