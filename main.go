package main

import "github.com/yarlson/loadbar/cmd"

func main() {
	cmd.Execute()
}
