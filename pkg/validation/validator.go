// Package validation checks API request payloads before they reach the
// session store.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	MaxElementIDLength = 64

	// elementIDPattern matches the ids used by the lab definition tables
	elementIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

func init() {
	validate = validator.New()
}

// AssignmentRequest sets or clears one axis of an element's classification.
// A nil Area clears the axis.
type AssignmentRequest struct {
	ElementID string  `json:"elementId" validate:"required,max=64"`
	Axis      string  `json:"axis" validate:"required,oneof=functional operational"`
	Area      *string `json:"area" validate:"omitempty,min=1,max=32"`
}

// ConnectionRequest creates a user connection between two systems.
type ConnectionRequest struct {
	SourceID       string `json:"sourceId" validate:"required,max=64"`
	TargetID       string `json:"targetId" validate:"required,max=64"`
	ConnectionType string `json:"connectionType" validate:"required,oneof=physical network wireless logical"`
	DataFlow       string `json:"dataFlow" validate:"required,oneof=unidirectional bidirectional"`
	Direction      string `json:"direction" validate:"omitempty,oneof=source_to_target target_to_source"`
}

// AnswerRequest records a quiz answer.
type AnswerRequest struct {
	QuestionID string `json:"questionId" validate:"required,max=32"`
	Answer     string `json:"answer" validate:"required,max=256"`
}

// ValidateAssignmentRequest validates an assignment mutation request
func ValidateAssignmentRequest(req *AssignmentRequest) error {
	if req == nil {
		return errors.New("assignment request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return validateElementID("ElementID", req.ElementID)
}

// ValidateConnectionRequest validates a connection creation request
func ValidateConnectionRequest(req *ConnectionRequest) error {
	if req == nil {
		return errors.New("connection request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	if err := validateElementID("SourceID", req.SourceID); err != nil {
		return err
	}
	return validateElementID("TargetID", req.TargetID)
}

// ValidateAnswerRequest validates a quiz answer request
func ValidateAnswerRequest(req *AnswerRequest) error {
	if req == nil {
		return errors.New("answer request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func validateElementID(field, id string) error {
	if len(id) > MaxElementIDLength {
		return fmt.Errorf("%s: exceeds maximum length of %d characters", field, MaxElementIDLength)
	}
	if !elementIDPattern.MatchString(id) {
		return fmt.Errorf("%s: '%s' contains invalid characters (only lowercase alphanumeric and hyphen allowed)", field, id)
	}
	return nil
}

// formatValidationError converts validator errors into user-readable messages
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s: is required", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: must be one of [%s]", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s: exceeds maximum length of %s", fe.Field(), fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s: below minimum length of %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
