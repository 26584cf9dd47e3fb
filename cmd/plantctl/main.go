package main

import "github.com/sakif/plant-care/cmd/plantctl/commands"

func main() {
	commands.Execute()
}
