package main

import "github.com/ihincks/what-happened/cmd"

func main() {
	cmd.Run()
}
