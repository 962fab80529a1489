package main

import "github.com/navkeep/navkeep/cmd/navkeep/cmd"

func main() {
	cmd.Execute()
}
