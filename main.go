package main

import "github.com/philipparndt/meshedit/cmd"

func main() {
	cmd.Execute()
}
