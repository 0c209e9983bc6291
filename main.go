package main

import "github.com/theopenlane/iocscope/cmd"

func main() {
	cmd.Execute()
}
