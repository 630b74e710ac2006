package main

import "github.com/inovacc/heroes/cmd"

func main() {
	cmd.Execute()
}
