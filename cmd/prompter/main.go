package main

import (
	"os"

	"github.com/schmitthub/prompter/internal/prompter"
)

func main() {
	os.Exit(prompter.Main())
}
