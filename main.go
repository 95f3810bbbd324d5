package main

import "github.com/kamusis/skillbook/cmd"

func main() {
	cmd.Execute()
}
