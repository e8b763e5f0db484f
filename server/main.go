package main

import "github.com/ponyo877/pyxl/server/cmd"

func main() {
	cmd.Execute()
}
