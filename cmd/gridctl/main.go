package main

import "github.com/corrinfell/gridwalk/cmd/gridctl/cmd"

func main() {
	cmd.Execute()
}
