package main

import "github.com/LegacyCodeHQ/resprune/cmd"

func main() {
	cmd.Execute()
}
