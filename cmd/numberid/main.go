package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func main() {
	cmd := newRootCmd(viper.New())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
