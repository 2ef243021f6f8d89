package main

import (
	"fmt"
	"io"
	"os"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"gopkg.in/yaml.v3"
)

// answers is the YAML document accepted by `wizard run`. Omitted keys keep
// the value already stored on the server.
type answers struct {
	SkillLevel         *string  `yaml:"skillLevel"`
	PrimaryLanguage    *string  `yaml:"primaryLanguage"`
	Goals              []string `yaml:"goals"`
	LearningStyle      *string  `yaml:"learningStyle"`
	PreferredLanguages []string `yaml:"preferredLanguages"`
	LearningPace       *string  `yaml:"learningPace"`
	TimeCommitment     *int     `yaml:"timeCommitment"`
	CommunicationStyle *string  `yaml:"communicationStyle"`
	Bio                *string  `yaml:"bio"`
	Avatar             *string  `yaml:"avatar"`
	ProfileVisibility  *string  `yaml:"profileVisibility"`
}

func loadAnswers(path string) (answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return answers{}, fmt.Errorf("open answers file: %w", err)
	}
	defer f.Close()

	return decodeAnswers(f)
}

func decodeAnswers(r io.Reader) (answers, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var a answers
	if err := dec.Decode(&a); err != nil && err != io.EOF {
		return answers{}, fmt.Errorf("decode answers: %w", err)
	}
	return a, nil
}

func (a answers) apply(p *onboarding.Profile) {
	if a.SkillLevel != nil {
		p.SkillLevel = onboarding.SkillLevel(*a.SkillLevel)
	}
	if a.PrimaryLanguage != nil {
		p.PrimaryLanguage = *a.PrimaryLanguage
	}
	if a.Goals != nil {
		p.Goals = append([]string{}, a.Goals...)
	}
	if a.LearningStyle != nil {
		p.LearningStyle = onboarding.LearningStyle(*a.LearningStyle)
	}
	if a.PreferredLanguages != nil {
		p.PreferredLanguages = append([]string{}, a.PreferredLanguages...)
	}
	if a.LearningPace != nil {
		p.LearningPace = onboarding.LearningPace(*a.LearningPace)
	}
	if a.TimeCommitment != nil {
		p.TimeCommitment = *a.TimeCommitment
	}
	if a.CommunicationStyle != nil {
		p.CommunicationStyle = onboarding.CommunicationStyle(*a.CommunicationStyle)
	}
	if a.Bio != nil {
		p.Bio = *a.Bio
	}
	if a.Avatar != nil {
		p.Avatar = *a.Avatar
	}
	if a.ProfileVisibility != nil {
		p.ProfileVisibility = onboarding.ProfileVisibility(*a.ProfileVisibility)
	}
}
