package main

import "coursehub/cli"

func main() {
	cli.Execute()
}
