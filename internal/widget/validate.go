package widget

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/yacobolo/uikit/internal/style"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used by all widgets.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// RegisterValidation fails only for an empty tag or a nil func.
		// Gradient slots accept gradient expressions and tokens that resolve to one.
		_ = v.RegisterValidation("gradient", func(fl validator.FieldLevel) bool {
			in := style.Parse(fl.Field().String())
			return in.Kind == style.KindUnset || in.Kind == style.KindGradient || in.Kind == style.KindToken
		})

		_ = v.RegisterValidation("item_id", func(fl validator.FieldLevel) bool {
			id := fl.Field().String()
			return id != "" && strings.TrimSpace(id) == id && !strings.ContainsAny(id, " \t\n")
		})

		validateInst = v
	})

	return validateInst
}

// ValidationError reports invalid widget configuration.
type ValidationError struct {
	Widget   string   // "tabs#main"
	Problems []string // One entry per failed rule
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid configuration: %s", e.Widget, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error { return e.Err }

// validate runs struct validation, the widget definition checks and any
// widget-specific problems found by the caller.
func validate(d definition, id string, cfg any, a Appearance, extra ...string) error {
	name := d.component + "#" + id
	var problems []string
	var cause error

	if err := validatorInstance().Struct(cfg); err != nil {
		cause = err
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				problems = append(problems, describeFieldError(fe))
			}
		} else {
			problems = append(problems, err.Error())
		}
	}

	problems = append(problems, d.check(a)...)
	problems = append(problems, extra...)

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Widget: name, Problems: problems, Err: cause}
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.SplitN(fe.Namespace(), ".", 2)
	path := fe.Field()
	if len(field) == 2 {
		path = field[1]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", path)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", path, fe.Param(), fmt.Sprint(fe.Value()))
	case "gradient":
		return fmt.Sprintf("%s must be a gradient expression or token, got %q", path, fmt.Sprint(fe.Value()))
	case "item_id":
		return fmt.Sprintf("%s must be a non-empty id without whitespace, got %q", path, fmt.Sprint(fe.Value()))
	case "unique":
		return fmt.Sprintf("%s contains duplicate %s values", path, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", path, fe.Tag())
	}
}

// sortedKeys returns map keys sorted.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
