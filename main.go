package main

import "github.com/endorses/lippycat/cmd"

func main() {
	cmd.Execute()
}
