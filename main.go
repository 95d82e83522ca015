package main

import "github.com/theirongolddev/gizi/cmd"

func main() {
	cmd.Execute()
}
