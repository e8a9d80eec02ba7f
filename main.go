package main

import "github.com/rhicksrad/India/cmd"

func main() {
	cmd.Execute()
}
