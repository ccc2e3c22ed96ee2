package main

import "github.com/user/cablecheck/cmd"

func main() {
	cmd.Execute()
}
