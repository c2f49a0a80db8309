package config

import (
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
)

// Validator validates configuration files against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileBytes(configSchemaCUE, cue.Filename("config.cue"))
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Config"))
	if !schema.Exists() {
		return nil, fmt.Errorf("schema does not define #Config")
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// ValidateBytes validates YAML config data. filename is used in messages.
func (v *Validator) ValidateBytes(filename string, data []byte) error {
	if strings.TrimSpace(string(data)) == "" {
		return nil
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}

	value := v.ctx.BuildFile(file)
	if value.Err() != nil {
		return fmt.Errorf("building %s: %w", filename, value.Err())
	}

	if err := v.schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Details: strings.TrimSpace(cueerrors.Details(err, nil)), Err: err}
	}

	return nil
}

// ValidateFile validates the configuration file at path.
func (v *Validator) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return v.ValidateBytes(path, data)
}

// ValidationError carries the schema violations reported by CUE.
type ValidationError struct {
	Details string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "config does not match schema:\n" + e.Details
}

// Unwrap returns the CUE error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
