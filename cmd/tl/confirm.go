package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// confirm prompts on stdout and reads a y/n answer from stdin. Anything
// other than "y" or "yes" counts as a refusal.
func confirm(message string) (bool, error) {
	fmt.Printf("%s [y/n]: ", message)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
