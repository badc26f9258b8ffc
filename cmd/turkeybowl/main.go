package main

import "turkeybowl/cmd"

func main() {
	cmd.Execute()
}
