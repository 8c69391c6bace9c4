package main

import (
	"encoding/json"
	"os"
)

func encodeJSONToStdout(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
