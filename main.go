package main

import (
	"github.com/jsphweid/trackdex/cmd"
)

func main() {
	cmd.Execute()
}
