package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries every violated rule keyed by json field name.
type ValidationError struct {
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var errMsgs []string
	for _, field := range fields {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, strings.Join(e.Errors[field], ", ")))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Errors == nil {
		e.Errors = make(map[string][]string)
	}
	e.Errors[field] = append(e.Errors[field], msg)
}

// MessageProvider lets a request override messages per "field.tag" key.
type MessageProvider interface {
	ValidationMessages() map[string]string
}

// CrossFieldValidator lets a request add checks that span several fields.
// Its errors are merged with the tag-based ones.
type CrossFieldValidator interface {
	ValidateFields() map[string][]string
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate checks i against its tags and cross-field rules and
// returns a *ValidationError listing every violation.
func (v *Validator) Validate(i interface{}) error {
	result := &ValidationError{}

	if err := v.validate.Struct(i); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		var overrides map[string]string
		if mp, ok := i.(MessageProvider); ok {
			overrides = mp.ValidationMessages()
		}

		for _, fe := range validationErrors {
			field := fieldPath(fe)
			if msg, ok := overrides[field+"."+fe.Tag()]; ok {
				result.add(field, msg)
				continue
			}
			for _, msg := range messagesFor(fe) {
				result.add(field, msg)
			}
		}
	}

	if cf, ok := i.(CrossFieldValidator); ok {
		for field, msgs := range cf.ValidateFields() {
			for _, msg := range msgs {
				result.add(field, msg)
			}
		}
	}

	if len(result.Errors) == 0 {
		return nil
	}
	return result
}

// fieldPath drops the root struct name from the namespace: "Req.steps[0].name" -> "steps[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func messagesFor(fe validator.FieldError) []string {
	if rule, ok := ruleByTag[fe.Tag()]; ok {
		return rule.Messages(fe)
	}
	return []string{builtinMessage(fe)}
}

func builtinMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if", "required_without":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters", fe.Param())
		}
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Ensure this field has at least %s items", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s", fe.Param())
	case "len":
		return fmt.Sprintf("Ensure this field has exactly %s characters", fe.Param())
	case "numeric":
		return "Enter a valid number"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return "Enter a valid URL"
	case "eqfield":
		return fmt.Sprintf("Must match %s", fe.Param())
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}
