package main

import (
	"github.com/Darshil0305/guitar-tabs-api/cmd"
)

func main() {
	cmd.Execute()
}
