package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/skillpath-onboarding/internal/usecase"
)

func (h *Handler) GetOnboardingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOnboardingStatus")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	status, err := h.onboardingService.GetStatus(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get onboarding status failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statusToDTO(status))
}

func (h *Handler) SaveOnboardingProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveOnboardingProgress")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	req, err := decodeOnboardingPatchRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	progress, err := h.onboardingService.SaveProgress(ctx, principal.UserID, req.toPatch())
	if err != nil {
		h.logger.WarnContext(ctx, "save onboarding progress failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, progressToDTO(progress))
}

func (h *Handler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteOnboarding")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	req, err := decodeOnboardingPatchRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	completion, err := h.onboardingService.Complete(ctx, principal.UserID, req.toPatch())
	if err != nil {
		h.logger.WarnContext(ctx, "complete onboarding failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, completionToDTO(completion))
}

func (h *Handler) GetLearningPath(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLearningPath")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	path, err := h.onboardingService.GetLearningPath(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get learning path failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, learningPathToDTO(path))
}

func (h *Handler) SkipOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SkipOnboarding")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	if _, err := h.onboardingService.Skip(ctx, principal.UserID); err != nil {
		h.logger.WarnContext(ctx, "skip onboarding failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, struct{}{})
}

// decodeOnboardingPatchRequest treats an empty body as an empty patch.
func decodeOnboardingPatchRequest(r *http.Request) (onboardingPatchRequest, error) {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req onboardingPatchRequest
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return onboardingPatchRequest{}, nil
		}
		return onboardingPatchRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return req, nil
}
