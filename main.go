package main

import "github.com/mvargas/gitlet-go/cmd"

func main() {
	cmd.Execute()
}
