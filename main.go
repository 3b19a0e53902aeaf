package main

import "mhr-catalog/cmd"

func main() {
	cmd.Execute()
}
