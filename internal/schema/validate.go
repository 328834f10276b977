// Package schema validates question-bank documents against the bundled JSON schema.
package schema

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed question_bank.json
var questionBankSchema []byte

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

var (
	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
)

func bankSchema() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(questionBankSchema))
	})
	return compiled, compileErr
}

// ValidateBank checks a decoded question-bank document (as produced by a
// generic YAML or JSON decode) for structural validity.
func ValidateBank(doc any) []ValidationError {
	s, err := bankSchema()
	if err != nil {
		return []ValidationError{{"(schema)", err.Error()}}
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return []ValidationError{{"(root)", fmt.Sprintf("not a valid document: %v", err)}}
	}
	if result.Valid() {
		return nil
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		errs = append(errs, ValidationError{Path: re.Field(), Message: re.Description()})
	}
	return errs
}
