package main

import "github.com/scopeclient/serenity/cli/cmd"

func main() {
	cmd.Execute()
}
