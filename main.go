package main

import (
	"E1FM/cmd"
)

func main() {
	cmd.Execute()
}
