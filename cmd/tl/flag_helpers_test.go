package main

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestAnyFlagChanged(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("title", "", "")
	flags.Bool("clear-due", false, "")

	if anyFlagChanged(flags, "title", "clear-due") {
		t.Fatal("expected no flags changed on a fresh flag set")
	}

	if err := flags.Set("title", "x"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if !anyFlagChanged(flags, "title", "clear-due") {
		t.Fatal("expected title to count as changed")
	}
	if anyFlagChanged(flags, "clear-due") {
		t.Fatal("expected clear-due to remain unchanged")
	}
	if anyFlagChanged(flags, "missing") {
		t.Fatal("unknown flag names never count as changed")
	}
}
