package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/jfaure/tasklist/internal/testsupport"
)

func TestItemScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/item",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
