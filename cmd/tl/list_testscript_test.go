package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/jfaure/tasklist/internal/testsupport"
)

func TestListScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/list",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
