package main

import "github.com/dave-shawley/massive-octo-dangerzone/cmd"

func main() {
	cmd.Execute()
}
