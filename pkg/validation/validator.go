package validation

import (
	"errors"
	"reflect"
	"strings"

	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with the equipment rules registered
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the custom rules. It panics if a rule fails to
// register since the service must not start without them.
func New() *Validator {
	v := validator.New()

	// Report json names so errors line up with request bodies
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := registerRules(v); err != nil {
		panic("failed to register validation rules: " + err.Error())
	}

	return &Validator{validate: v}
}

// Struct validates s and converts failures into an apperrors.ValidationError
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &apperrors.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fieldPath(fe)] = describe(fe)
	}
	return out
}

func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("department", isKnownDepartment); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_status", isKnownStatus); err != nil {
		return err
	}
	return nil
}

func isKnownDepartment(fl validator.FieldLevel) bool {
	return models.Department(fl.Field().String()).IsValid()
}

func isKnownStatus(fl validator.FieldLevel) bool {
	return models.EquipmentStatus(fl.Field().String()).IsValid()
}

// fieldPath drops the top-level struct name: "Equipment.risk_assessments[0].severity" -> "risk_assessments[0].severity"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "department":
		return "must be a known department"
	case "equipment_status":
		return "must be a known equipment status"
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}
