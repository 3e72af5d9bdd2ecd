package main

import "github.com/oshokin/ccfx/cmd/ccfx/cmd"

func main() {
	cmd.Execute()
}
