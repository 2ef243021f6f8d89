package onboarding

import (
	"bytes"

	"github.com/bytedance/sonic"
)

type fieldState uint8

const (
	fieldUnchanged fieldState = iota
	fieldSet
	fieldCleared
)

// Field is a tagged update value: Unchanged, Set(value) or Cleared.
// In JSON an omitted key is Unchanged, null is Cleared and anything else is Set.
type Field[T any] struct {
	state fieldState
	value T
}

func Unchanged[T any]() Field[T] { return Field[T]{} }

func Set[T any](value T) Field[T] { return Field[T]{state: fieldSet, value: value} }

func Cleared[T any]() Field[T] { return Field[T]{state: fieldCleared} }

func (f Field[T]) IsSet() bool       { return f.state == fieldSet }
func (f Field[T]) IsCleared() bool   { return f.state == fieldCleared }
func (f Field[T]) IsUnchanged() bool { return f.state == fieldUnchanged }

// Value returns the carried value; the zero value unless the field is Set.
func (f Field[T]) Value() T { return f.value }

// Resolve returns the value the field should hold after applying the update.
func (f Field[T]) Resolve(current, cleared T) T {
	switch f.state {
	case fieldSet:
		return f.value
	case fieldCleared:
		return cleared
	default:
		return current
	}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = Cleared[T]()
		return nil
	}

	var value T
	if err := sonic.Unmarshal(data, &value); err != nil {
		return err
	}
	*f = Set(value)
	return nil
}

// Patch is a partial update of a record. Collection fields replace the stored
// collection wholesale when Set.
type Patch struct {
	CurrentStep        Field[int]
	SkillLevel         Field[SkillLevel]
	PrimaryLanguage    Field[string]
	Goals              Field[[]string]
	LearningStyle      Field[LearningStyle]
	PreferredLanguages Field[[]string]
	LearningPace       Field[LearningPace]
	TimeCommitment     Field[int]
	CommunicationStyle Field[CommunicationStyle]
	Bio                Field[string]
	Avatar             Field[string]
	ProfileVisibility  Field[ProfileVisibility]
}

// PatchFromProfile sets every field of the patch from a full draft, so that
// applying it reproduces the draft exactly.
func PatchFromProfile(step int, p Profile) Patch {
	return Patch{
		CurrentStep:        Set(step),
		SkillLevel:         setOrClear(p.SkillLevel),
		PrimaryLanguage:    setOrClear(p.PrimaryLanguage),
		Goals:              Set(cloneStrings(p.Goals)),
		LearningStyle:      setOrClear(p.LearningStyle),
		PreferredLanguages: Set(cloneStrings(p.PreferredLanguages)),
		LearningPace:       setOrClear(p.LearningPace),
		TimeCommitment:     Set(p.TimeCommitment),
		CommunicationStyle: setOrClear(p.CommunicationStyle),
		Bio:                Set(p.Bio),
		Avatar:             setOrClear(p.Avatar),
		ProfileVisibility:  setOrClear(p.ProfileVisibility),
	}
}

func setOrClear[T ~string](v T) Field[T] {
	if v == "" {
		return Cleared[T]()
	}
	return Set(v)
}

// ApplyTo merges the patch into p. Cleared fields fall back to their defaults.
func (p Patch) ApplyTo(in Profile) Profile {
	defaults := DefaultProfile()
	out := in.Clone()

	out.SkillLevel = p.SkillLevel.Resolve(out.SkillLevel, "")
	out.PrimaryLanguage = p.PrimaryLanguage.Resolve(out.PrimaryLanguage, "")
	out.Goals = cloneStrings(p.Goals.Resolve(out.Goals, nil))
	out.LearningStyle = p.LearningStyle.Resolve(out.LearningStyle, "")
	out.PreferredLanguages = cloneStrings(p.PreferredLanguages.Resolve(out.PreferredLanguages, nil))
	out.LearningPace = p.LearningPace.Resolve(out.LearningPace, defaults.LearningPace)
	out.TimeCommitment = p.TimeCommitment.Resolve(out.TimeCommitment, defaults.TimeCommitment)
	out.CommunicationStyle = p.CommunicationStyle.Resolve(out.CommunicationStyle, defaults.CommunicationStyle)
	out.Bio = p.Bio.Resolve(out.Bio, "")
	out.Avatar = p.Avatar.Resolve(out.Avatar, "")
	out.ProfileVisibility = p.ProfileVisibility.Resolve(out.ProfileVisibility, defaults.ProfileVisibility)

	return out
}

// Apply merges the patch into a record. Completed records stay pinned to the
// last step whatever the patch says.
func (p Patch) Apply(in Record) Record {
	out := in.Clone()
	out.Profile = p.ApplyTo(in.Profile)
	if !out.IsCompleted {
		out.CurrentStep = p.CurrentStep.Resolve(out.CurrentStep, StepIntroduction)
	}
	return out
}
