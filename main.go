package main

import "github.com/gaurav-prasanna/pagelift/cmd"

func main() {
	cmd.Execute()
}
