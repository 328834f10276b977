package bank

import (
	"fmt"

	"github.com/dshills/tdahscreen/internal/schema"
)

// MaxWeight is the highest weight any single answer can carry.
const MaxWeight = 3

// Validate checks the invariants a bank must hold beyond its document schema:
// unique ids, distinct options, full feedback coverage, and consistent
// override scales. A bank may leave a category without questions; that
// category then always scores zero.
func Validate(questions []Question) []schema.ValidationError {
	var errs []schema.ValidationError
	if len(questions) == 0 {
		return append(errs, schema.ValidationError{Path: "questions", Message: "at least one question required"})
	}

	ids := make(map[int]bool)
	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		if q.ID < 1 {
			errs = append(errs, schema.ValidationError{Path: prefix + ".id", Message: "must be >= 1"})
		} else if ids[q.ID] {
			errs = append(errs, schema.ValidationError{Path: prefix + ".id", Message: fmt.Sprintf("duplicate ID: %d", q.ID)})
		} else {
			ids[q.ID] = true
		}
		if q.Text == "" {
			errs = append(errs, schema.ValidationError{Path: prefix + ".text", Message: "required"})
		}
		if !q.Category.Valid() {
			errs = append(errs, schema.ValidationError{Path: prefix + ".category", Message: fmt.Sprintf("invalid: %q", q.Category)})
		}
		errs = append(errs, validateOptions(prefix, q)...)
		for _, bucket := range Buckets() {
			if q.Feedback[bucket] == "" {
				errs = append(errs, schema.ValidationError{Path: prefix + ".feedback." + string(bucket), Message: "required"})
			}
		}
		errs = append(errs, validateScale(prefix, q)...)
	}
	return errs
}

func validateOptions(prefix string, q Question) []schema.ValidationError {
	var errs []schema.ValidationError
	if len(q.Options) < 2 {
		errs = append(errs, schema.ValidationError{Path: prefix + ".options", Message: "at least two options required"})
	}
	seen := make(map[string]bool)
	for j, o := range q.Options {
		switch {
		case o == "":
			errs = append(errs, schema.ValidationError{Path: fmt.Sprintf("%s.options[%d]", prefix, j), Message: "required"})
		case seen[o]:
			errs = append(errs, schema.ValidationError{Path: fmt.Sprintf("%s.options[%d]", prefix, j), Message: fmt.Sprintf("duplicate option: %q", o)})
		}
		seen[o] = true
	}
	return errs
}

func validateScale(prefix string, q Question) []schema.ValidationError {
	if len(q.Scale) == 0 {
		return nil
	}
	var errs []schema.ValidationError
	covered := make(map[string]bool)
	for j, sp := range q.Scale {
		p := fmt.Sprintf("%s.scale[%d]", prefix, j)
		if !q.HasOption(sp.Option) {
			errs = append(errs, schema.ValidationError{Path: p + ".option", Message: fmt.Sprintf("%q is not one of the question's options", sp.Option)})
		}
		if covered[sp.Option] {
			errs = append(errs, schema.ValidationError{Path: p + ".option", Message: fmt.Sprintf("duplicate option: %q", sp.Option)})
		}
		covered[sp.Option] = true
		if sp.Weight < 0 || sp.Weight > MaxWeight {
			errs = append(errs, schema.ValidationError{Path: p + ".weight", Message: fmt.Sprintf("must be between 0 and %d", MaxWeight)})
		}
		if !sp.Bucket.Valid() {
			errs = append(errs, schema.ValidationError{Path: p + ".bucket", Message: fmt.Sprintf("invalid: %q", sp.Bucket)})
		}
	}
	for _, o := range q.Options {
		if !covered[o] {
			errs = append(errs, schema.ValidationError{Path: prefix + ".scale", Message: fmt.Sprintf("option %q has no weight", o)})
		}
	}
	return errs
}
