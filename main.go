package main

import "github.com/platform-mesh/backend-resources/cmd"

func main() {
	cmd.Execute()
}
