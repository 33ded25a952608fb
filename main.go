package main

import "github.com/stuttgart-things/workspaces/cmd"

func main() {
	cmd.Execute()
}
