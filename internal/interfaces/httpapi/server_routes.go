package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerAuthorizedOnboardingRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/onboarding/status", RequireAuth(verifier, http.HandlerFunc(handler.GetOnboardingStatus)))
	mux.Handle("POST /v1/onboarding/progress", RequireAuth(verifier, http.HandlerFunc(handler.SaveOnboardingProgress)))
	mux.Handle("POST /v1/onboarding/complete", RequireAuth(verifier, http.HandlerFunc(handler.CompleteOnboarding)))
	mux.Handle("GET /v1/onboarding/learning-path", RequireAuth(verifier, http.HandlerFunc(handler.GetLearningPath)))
	mux.Handle("POST /v1/onboarding/skip", RequireAuth(verifier, http.HandlerFunc(handler.SkipOnboarding)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/warm-learning-paths", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunWarmLearningPathsJob)))
}
