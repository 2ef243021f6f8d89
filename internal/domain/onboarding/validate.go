package onboarding

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError names one offending input field.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError reports caller-input problems. It is never persisted.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) FieldNames() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Field)
	}
	return out
}

func (e *ValidationError) add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

var validate = validator.New()

var (
	stepRule               = fmt.Sprintf("min=%d,max=%d", StepIntroduction, LastStep)
	timeCommitmentRule     = fmt.Sprintf("min=%d,max=%d", MinTimeCommitment, MaxTimeCommitment)
	bioRule                = "max=" + strconv.Itoa(MaxBioLength)
	skillLevelRule         = oneOf(SkillBeginner, SkillIntermediate, SkillAdvanced)
	learningStyleRule      = oneOf(StyleAIMentorship, StyleCodeReview, StyleBoth)
	learningPaceRule       = oneOf(PaceRelaxed, PaceModerate, PaceIntensive)
	communicationStyleRule = oneOf(CommunicationConcise, CommunicationDetailed, CommunicationBalanced)
	visibilityRule         = oneOf(VisibilityPublic, VisibilityPrivate, VisibilityFriendsOnly)
)

const (
	languageRule     = "required,max=50"
	languageListRule = "dive,required,max=50"
	goalListRule     = "dive,required,max=200"
	avatarRule       = "max=2048"
)

func oneOf[T ~string](values ...T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, string(v))
	}
	return "oneof=" + strings.Join(parts, " ")
}

// Validate checks every Set field of the patch. Cleared and Unchanged fields
// are always acceptable.
func (p Patch) Validate() error {
	verr := &ValidationError{}

	checkField(verr, "currentStep", p.CurrentStep, stepRule)
	checkField(verr, "skillLevel", p.SkillLevel, skillLevelRule)
	checkField(verr, "primaryLanguage", p.PrimaryLanguage, languageRule)
	checkField(verr, "goals", p.Goals, goalListRule)
	checkField(verr, "learningStyle", p.LearningStyle, learningStyleRule)
	checkField(verr, "preferredLanguages", p.PreferredLanguages, languageListRule)
	checkField(verr, "learningPace", p.LearningPace, learningPaceRule)
	checkField(verr, "timeCommitment", p.TimeCommitment, timeCommitmentRule)
	checkField(verr, "communicationStyle", p.CommunicationStyle, communicationStyleRule)
	checkField(verr, "bio", p.Bio, bioRule)
	checkField(verr, "avatar", p.Avatar, avatarRule)
	checkField(verr, "profileVisibility", p.ProfileVisibility, visibilityRule)

	return verr.orNil()
}

func checkField[T any](verr *ValidationError, name string, f Field[T], rule string) {
	if !f.IsSet() {
		return
	}
	if err := validate.Var(f.Value(), rule); err != nil {
		verr.add(name, describeRuleError(err))
	}
}

func describeRuleError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}
	fe := fieldErrs[0]
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// RequireCompletionFields reports which answers are still missing before the
// flow can be completed.
func RequireCompletionFields(p Profile) error {
	verr := &ValidationError{}
	if p.SkillLevel == "" {
		verr.add("skillLevel", "required")
	}
	if strings.TrimSpace(p.PrimaryLanguage) == "" {
		verr.add("primaryLanguage", "required")
	}
	if p.LearningStyle == "" {
		verr.add("learningStyle", "required")
	}
	return verr.orNil()
}
