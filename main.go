package main

import "github.com/curaious/linkfinder/cmd"

func main() {
	cmd.Execute()
}
