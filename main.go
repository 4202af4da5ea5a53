package main

import (
	"bankbook/cmd"
)

func main() {
	cmd.Execute()
}
