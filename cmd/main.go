package main

import (
	cmd "github.com/kerbaras/fittracker/cmd/fittracker"
)

func main() {
	cmd.Execute()
}
