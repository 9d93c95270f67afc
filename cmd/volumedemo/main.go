package main

import "github.com/ThatOtherAndrew/volumedemo/cmd"

func main() {
	cmd.Execute()
}
