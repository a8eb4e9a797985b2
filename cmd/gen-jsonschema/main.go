package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/suzuki-shunsuke/corscheck/pkg/config"
)

func main() {
	if err := core(); err != nil {
		log.Fatal(err)
	}
}

func core() error {
	if err := gen(&config.Config{}, "json-schema/corscheck.json"); err != nil {
		return err
	}
	return nil
}

func gen(input any, p string) error {
	s := jsonschema.Reflect(input)
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal the schema as JSON: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("create a directory %s: %w", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, []byte(strings.ReplaceAll(string(b), "http://json-schema.org", "https://json-schema.org")+"\n"), 0o644); err != nil { //nolint:gosec,mnd
		return fmt.Errorf("write JSON Schema to %s: %w", p, err)
	}
	return nil
}
