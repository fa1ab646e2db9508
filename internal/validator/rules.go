package validator

import (
	"fmt"
	"log"
	"reflect"
	"strconv"
	"strings"

	"ajira_backend/internal/auth"
	"ajira_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// Rule is one custom tag: the predicate and the messages reported when it fails.
type Rule struct {
	Tag      string
	Check    validator.Func
	Messages func(fe validator.FieldError) []string
}

func staticMessage(msg string) func(validator.FieldError) []string {
	return func(validator.FieldError) []string { return []string{msg} }
}

func enumMessage[T ~string](values []T) func(validator.FieldError) []string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	msg := "Must be one of: " + strings.Join(names, ", ")
	return staticMessage(msg)
}

// enumRule accepts empty strings; presence is the job of "required".
func enumRule[T ~string](tag string, valid func(T) bool, values []T) Rule {
	return Rule{
		Tag: tag,
		Check: func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || valid(T(value))
		},
		Messages: enumMessage(values),
	}
}

// Rules is the table of every custom tag the request types use.
var Rules = []Rule{
	enumRule("user-type", models.UserRole.IsValid, models.UserRoles),
	enumRule("job-status", models.JobStatus.IsValid, models.JobStatuses),
	enumRule("application-status", models.ApplicationStatus.IsValid, models.ApplicationStatuses),
	enumRule("experience-level", models.ExperienceLevel.IsValid, models.ExperienceLevels),
	enumRule("project-type", models.ProjectType.IsValid, models.ProjectTypes),
	enumRule("currency", models.Currency.IsValid, models.Currencies),
	{
		Tag:      "trimmed-min2",
		Check:    validateTrimmedMin2,
		Messages: staticMessage("Ensure this field has at least 2 characters"),
	},
	{
		Tag:   "password-policy",
		Check: validatePasswordPolicy,
		Messages: func(fe validator.FieldError) []string {
			value, _ := fe.Value().(string)
			return auth.PasswordViolations(value)
		},
	},
	{
		Tag:      "notblank",
		Check:    validateNotBlank,
		Messages: staticMessage("This field may not be blank"),
	},
	{
		Tag:      "budget",
		Check:    validateBudget,
		Messages: budgetMessages,
	},
	{
		Tag:      "nonblank-items",
		Check:    validateNonBlankItems,
		Messages: staticMessage("Items may not be blank"),
	},
}

var ruleByTag = func() map[string]Rule {
	m := make(map[string]Rule, len(Rules))
	for _, r := range Rules {
		m[r.Tag] = r
	}
	return m
}()

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	for _, r := range Rules {
		mustRegister(r.Tag, r.Check)
	}
}

func stringValue(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return "", false
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return "", false
	}
	return field.String(), true
}

// validateTrimmedMin2 passes empty values; a present value needs two non-space characters.
func validateTrimmedMin2(fl validator.FieldLevel) bool {
	value, ok := stringValue(fl)
	if !ok || value == "" {
		return true
	}
	return len([]rune(strings.TrimSpace(value))) >= 2
}

func validatePasswordPolicy(fl validator.FieldLevel) bool {
	value, ok := stringValue(fl)
	if !ok {
		return true
	}
	return len(auth.PasswordViolations(value)) == 0
}

func validateNonBlankItems(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		panic(fmt.Sprintf("nonblank-items used on %s", field.Kind()))
	}
	for i := 0; i < field.Len(); i++ {
		if strings.TrimSpace(field.Index(i).String()) == "" {
			return false
		}
	}
	return true
}

// validateNotBlank fails strings that are empty after trimming. Nil pointers pass.
func validateNotBlank(fl validator.FieldLevel) bool {
	value, ok := stringValue(fl)
	return !ok || strings.TrimSpace(value) != ""
}

// maxBudget is the largest amount a numeric(10,2) column holds.
const maxBudget = 99999999.99

const budgetDecimalPlaces = 2

func floatValue(fl validator.FieldLevel) (float64, bool) {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return 0, false
		}
		field = field.Elem()
	}
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return field.Float(), true
	default:
		panic(fmt.Sprintf("budget used on %s", field.Kind()))
	}
}

// decimalPlaces counts the digits after the point in the shortest form of v,
// which for a value decoded from JSON is the form the client sent.
func decimalPlaces(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		return len(s) - idx - 1
	}
	return 0
}

func validateBudget(fl validator.FieldLevel) bool {
	v, ok := floatValue(fl)
	if !ok {
		return true
	}
	return v <= maxBudget && decimalPlaces(v) <= budgetDecimalPlaces
}

func budgetMessages(fe validator.FieldError) []string {
	var v float64
	switch value := fe.Value().(type) {
	case float64:
		v = value
	case *float64:
		if value != nil {
			v = *value
		}
	}

	var msgs []string
	if decimalPlaces(v) > budgetDecimalPlaces {
		msgs = append(msgs, "Ensure that there are no more than 2 decimal places.")
	}
	if v > maxBudget {
		msgs = append(msgs, "Ensure that there are no more than 10 digits in total.")
	}
	if len(msgs) == 0 {
		msgs = append(msgs, "Enter a valid budget")
	}
	return msgs
}
