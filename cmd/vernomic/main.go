package main

import "github.com/pders01/vernomic/cmd"

func main() {
	cmd.Execute()
}
