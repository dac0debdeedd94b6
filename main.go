package main

import "github.com/abcu/advisor/cmd"

func main() {
	cmd.Execute()
}
