package main

import "github.com/raintank/lctank/cmd/lc-fakecurves/cmd"

func main() {
	cmd.Execute()
}
