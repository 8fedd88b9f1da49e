package main

import (
	"fmt"
	"os"

	"github.com/hibiki-ai/docagent/internal/docchat"
)

func main() {
	if err := docchat.NewDocChatCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
