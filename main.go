package main

import "github.com/xvierd/pomocli/cmd"

func main() {
	cmd.Execute()
}
