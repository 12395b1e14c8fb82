package main

import "github.com/Vaibhav17t/codebase-review/src/handler/cli"

func main() {
	cli.Run()
}
