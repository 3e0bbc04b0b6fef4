// Package main is the entry point for the qirk CLI.
package main

import "qirk.dev/pkg/qirk/cmd"

func main() {
	cmd.Execute()
}
