// Package main is the entry point for the loshu CLI.
package main

import "loshu.dev/pkg/loshu/cmd"

func main() {
	cmd.Execute()
}
