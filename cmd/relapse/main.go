package main

import "relapse/cmd/relapse/cmd"

func main() {
	cmd.Execute()
}
