package main

import "movies-admin/cmd/catalogctl/command"

func main() {
	command.Execute()
}
