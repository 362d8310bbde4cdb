package main

import "github.com/go-graph/maxinfluence/cmd"

func main() {
	cmd.Execute()
}
