package main

import (
	"fmt"
	"os"

	"github.com/raptors2019-ai/math-tutor-2-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
