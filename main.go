package main

import (
	"github.com/praetorian-inc/outrider/cmd"
)

func main() {
	cmd.Execute()
}
