package main

import "github.com/Qodor04/gula-cli/cmd/gula"

func main() {
	gula.Execute()
}
