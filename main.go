package main

import "capstone-timeline/cmd"

func main() {
	cmd.Execute()
}
