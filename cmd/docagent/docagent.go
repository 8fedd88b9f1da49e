package main

import (
	"github.com/hibiki-ai/docagent/internal/docagent"
	_ "go.uber.org/automaxprocs"
)

func main() {
	docagent.NewApp("docagent").Run()
}
