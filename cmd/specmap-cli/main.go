package main

import "specmap/cmd/specmap-cli/cmd"

func main() {
	cmd.Execute()
}
