package main

import (
	"domain-auction/internal/cli"
	"domain-auction/utils"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		utils.Fatal("domain-auction exited with an error", map[string]any{"error": err.Error()})
	}
}
