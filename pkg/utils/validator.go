package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind is the JSON type a field must carry.
type Kind int

const (
	KindString Kind = iota
	KindBoolean
)

func (k Kind) rule() string {
	switch k {
	case KindBoolean:
		return "boolean"
	default:
		return "string"
	}
}

// Rule describes one accepted input field. Tags holds extra
// go-playground/validator tags evaluated after the type check.
// A present null (or blank string) is only accepted on Nullable fields.
type Rule struct {
	Field    string
	Kind     Kind
	Required bool
	Nullable bool
	Tags     string
}

// Messages maps a rule key (e.g. "required", "max.string") to a template.
// ":attribute" and any ":<param>" placeholder are interpolated.
type Messages map[string]string

var DefaultMessages = Messages{
	"required":   "The :attribute field is required.",
	"string":     "The :attribute must be a string.",
	"boolean":    "The :attribute field must be true or false.",
	"max.string": "The :attribute may not be greater than :max characters.",
	"min.string": "The :attribute must be at least :min characters.",
	"invalid":    "The :attribute is invalid.",
}

// ValidationError collects every failed rule, keyed by field name.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	var msgs []string
	for _, field := range names {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], " ")))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// Validator evaluates rule tables against decoded JSON input.
type Validator struct {
	validate *validator.Validate
	messages Messages
}

func NewValidator(messages Messages) *Validator {
	if messages == nil {
		messages = DefaultMessages
	}
	return &Validator{
		validate: validator.New(),
		messages: messages,
	}
}

// Validate normalizes input and checks it against rules. The returned map
// holds only ruled fields that were present in input; a blank string on a
// Nullable field is returned as nil. Fields without a rule are dropped.
func (v *Validator) Validate(input map[string]any, rules []Rule) (map[string]any, error) {
	out := make(map[string]any)
	verr := &ValidationError{Fields: make(map[string][]string)}

	for _, rule := range rules {
		raw, present := input[rule.Field]
		value := NormalizeInput(raw)

		if value == nil {
			switch {
			case rule.Required:
				verr.add(rule.Field, v.message("required", rule.Field, nil))
			case !present:
			case rule.Nullable:
				out[rule.Field] = nil
			default:
				verr.add(rule.Field, v.message(rule.Kind.rule(), rule.Field, nil))
			}
			continue
		}

		if !hasKind(value, rule.Kind) {
			verr.add(rule.Field, v.message(rule.Kind.rule(), rule.Field, nil))
			continue
		}

		if rule.Tags != "" {
			if err := v.validate.Var(value, rule.Tags); err != nil {
				var fieldErrs validator.ValidationErrors
				if !errors.As(err, &fieldErrs) {
					return nil, fmt.Errorf("validate %s: %w", rule.Field, err)
				}
				for _, fe := range fieldErrs {
					key := ruleKey(fe.Tag(), rule.Kind)
					verr.add(rule.Field, v.message(key, rule.Field, map[string]string{fe.Tag(): fe.Param()}))
				}
				continue
			}
		}

		out[rule.Field] = value
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return out, nil
}

// NormalizeInput trims strings and turns blank strings into nil.
// Other values pass through untouched.
func NormalizeInput(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

func hasKind(value any, kind Kind) bool {
	switch kind {
	case KindBoolean:
		_, ok := value.(bool)
		return ok
	default:
		_, ok := value.(string)
		return ok
	}
}

// size rules carry the type in their message key.
func ruleKey(tag string, kind Kind) string {
	switch tag {
	case "max", "min", "len":
		return tag + "." + kind.rule()
	default:
		return tag
	}
}

func (v *Validator) message(key, field string, params map[string]string) string {
	template, ok := v.messages[key]
	if !ok {
		template, ok = v.messages["invalid"]
		if !ok {
			template = "The :attribute is invalid."
		}
	}

	pairs := []string{":attribute", strings.ReplaceAll(field, "_", " ")}
	for name, value := range params {
		pairs = append(pairs, ":"+name, value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func (e *ValidationError) add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}
