package main

import (
	"github.com/foomo/profilesite/cmd"
)

func main() {
	cmd.Execute()
}
