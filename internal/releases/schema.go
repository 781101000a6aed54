package releases

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

const (
	catalogSchemaName = "releases.schema.json"
	releaseSchemaName = "release.schema.json"
)

var (
	catalogSchema *jsonschema.Schema
	releaseSchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
	printer       = message.NewPrinter(language.English)
)

// getSchemas compiles the embedded list and entry schemas once.
func getSchemas() (*jsonschema.Schema, *jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		for _, name := range []string{catalogSchemaName, releaseSchemaName} {
			data, err := schemaFS.ReadFile("schema/" + name)
			if err != nil {
				compileErr = fmt.Errorf("reading schema %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshaling schema %s: %w", name, err)
				return
			}
			if err := c.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("adding schema resource %s: %w", name, err)
				return
			}
		}

		var err error
		if catalogSchema, err = c.Compile(catalogSchemaName); err != nil {
			compileErr = fmt.Errorf("compiling schema: %w", err)
			return
		}
		if releaseSchema, err = c.Compile(releaseSchemaName); err != nil {
			compileErr = fmt.Errorf("compiling schema: %w", err)
		}
	})
	return catalogSchema, releaseSchema, compileErr
}

// validateCatalog checks that a raw response body is a release list.
// Individual entries are checked separately by validateRelease.
func validateCatalog(body []byte) error {
	schema, _, err := getSchemas()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}
	return validate(schema, body)
}

// validateRelease checks one raw entry of the release list.
func validateRelease(entry []byte) error {
	_, schema, err := getSchemas()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}
	return validate(schema, entry)
}

func validate(schema *jsonschema.Schema, data []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing release JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validating release JSON: %w", err)
	}
	return fmt.Errorf("unexpected release JSON: %s", firstIssue(ve))
}

// firstIssue walks to the first leaf of the error tree and formats it as
// "<instance path>: <message>".
func firstIssue(ve *jsonschema.ValidationError) string {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}

	path := "/" + strings.Join(ve.InstanceLocation, "/")
	msg := ve.Error()
	if ve.ErrorKind != nil {
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	return path + ": " + msg
}
