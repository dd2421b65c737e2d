// Package main is the entry point for the codectx CLI.
package main

import "codectx.dev/pkg/codectx/cmd"

func main() {
	cmd.Execute()
}
