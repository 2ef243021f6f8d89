package onboardingapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/user"
	"github.com/riskibarqy/skillpath-onboarding/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/skillpath-onboarding/internal/interfaces/httpapi"
	"github.com/riskibarqy/skillpath-onboarding/internal/platform/cache"
	"github.com/riskibarqy/skillpath-onboarding/internal/platform/logging"
	"github.com/riskibarqy/skillpath-onboarding/internal/usecase"
	"github.com/riskibarqy/skillpath-onboarding/internal/wizard"
)

type tokenVerifier struct{}

func (tokenVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	if token != "token-1" {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return user.Principal{UserID: "user-1"}, nil
}

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	service := usecase.NewOnboardingService(
		memory.NewOnboardingRepository(),
		memory.NewPreferenceRepository(),
		cache.NewMemoryStore(time.Minute),
		logging.NewNop(),
	)
	router := httpapi.NewRouter(httpapi.NewHandler(service, logging.NewNop()), tokenVerifier{}, logging.NewNop(), false, nil, "")
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server, token string) *Client {
	return NewClient(srv.Client(), Config{BaseURL: srv.URL + "/", Token: token}, logging.NewNop())
}

func TestEncodePatch(t *testing.T) {
	patch := onboarding.Patch{
		CurrentStep:     onboarding.Set(2),
		PrimaryLanguage: onboarding.Cleared[string](),
		Goals:           onboarding.Set([]string{"web"}),
	}

	raw, err := sonic.Marshal(encodePatch(patch))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := sonic.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]any{
		"currentStep":     float64(2),
		"primaryLanguage": nil,
		"goals":           []any{"web"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("encoded patch mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_RoundTripAgainstAPI(t *testing.T) {
	srv := newAPIServer(t)
	client := newTestClient(srv, "token-1")
	ctx := context.Background()

	status, err := client.GetStatus(ctx, "user-1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.IsCompleted || status.Record.UserID != "user-1" {
		t.Fatalf("unexpected status: %+v", status)
	}

	progress, err := client.SaveProgress(ctx, "user-1", onboarding.Patch{
		CurrentStep:     onboarding.Set(1),
		SkillLevel:      onboarding.Set(onboarding.SkillAdvanced),
		PrimaryLanguage: onboarding.Set("go"),
	})
	if err != nil {
		t.Fatalf("save progress: %v", err)
	}
	if progress.CurrentStep != 1 || progress.Record.Profile.PrimaryLanguage != "go" {
		t.Fatalf("unexpected progress: %+v", progress)
	}

	if _, err := client.GetLearningPath(ctx, "user-1"); !errors.Is(err, usecase.ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}

	_, err = client.Complete(ctx, "user-1", onboarding.Patch{})
	var verr *onboarding.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if diff := cmp.Diff([]string{"learningStyle"}, verr.FieldNames()); diff != "" {
		t.Fatalf("missing fields mismatch (-want +got):\n%s", diff)
	}

	completion, err := client.Complete(ctx, "user-1", onboarding.Patch{
		LearningStyle:  onboarding.Set(onboarding.StyleCodeReview),
		Goals:          onboarding.Set([]string{"backend services"}),
		TimeCommitment: onboarding.Set(10),
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !completion.Record.IsCompleted || completion.Record.CompletedAt == nil {
		t.Fatalf("expected completed record, got %+v", completion.Record)
	}
	if completion.LearningPath.EstimatedDurationWeeks != 10 {
		t.Fatalf("expected 10 weeks for advanced at 10h moderate, got %d", completion.LearningPath.EstimatedDurationWeeks)
	}

	path, err := client.GetLearningPath(ctx, "user-1")
	if err != nil {
		t.Fatalf("learning path: %v", err)
	}
	if diff := cmp.Diff(completion.LearningPath, path); diff != "" {
		t.Fatalf("learning path mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_SkipReturnsStoredRecord(t *testing.T) {
	srv := newAPIServer(t)
	client := newTestClient(srv, "token-1")

	rec, err := client.Skip(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if !rec.Skipped || !rec.IsCompleted || rec.Profile.PrimaryLanguage != onboarding.SkipLanguage {
		t.Fatalf("unexpected skipped record: %+v", rec)
	}
}

func TestClient_MapsTransportErrors(t *testing.T) {
	srv := newAPIServer(t)

	if _, err := newTestClient(srv, "bad").GetStatus(context.Background(), "user-1"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()
	if _, err := newTestClient(down, "token-1").GetStatus(context.Background(), "user-1"); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}

	closed := httptest.NewServer(http.NotFoundHandler())
	closed.Close()
	if _, err := newTestClient(closed, "token-1").GetStatus(context.Background(), "user-1"); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable for refused connection, got %v", err)
	}
}

func TestClient_DrivesWizardController(t *testing.T) {
	srv := newAPIServer(t)
	client := newTestClient(srv, "token-1")
	ctx := context.Background()

	status, err := client.GetStatus(ctx, "user-1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	c := wizard.Resume(client, status.Record, wizard.AutoSaveConfig{Delay: time.Hour, Logger: logging.NewNop()})
	defer c.Close()

	if err := c.JumpTo(ctx, onboarding.LastStep); err != nil {
		t.Fatalf("jump: %v", err)
	}
	_ = c.Update(func(p *onboarding.Profile) {
		p.SkillLevel = onboarding.SkillIntermediate
		p.PrimaryLanguage = "rust"
		p.LearningStyle = onboarding.StyleAIMentorship
		p.Goals = []string{"systems"}
		p.PreferredLanguages = []string{"rust"}
	})

	out, err := c.Complete(ctx)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.Recommendations.SuggestedChallenges[0] != "data-structures-rust" {
		t.Fatalf("unexpected challenges: %v", out.Recommendations.SuggestedChallenges)
	}
}
