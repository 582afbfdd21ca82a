package main

import "github.com/tonalhq/tonal/cmd"

func main() {
	cmd.Execute()
}
