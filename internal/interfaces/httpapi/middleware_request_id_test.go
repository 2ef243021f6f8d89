package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fixedIDs struct {
	id  string
	err error
}

func (g fixedIDs) NewID() (string, error) { return g.id, g.err }

func TestRequestID(t *testing.T) {
	cases := []struct {
		name    string
		inbound string
		gen     fixedIDs
		want    string
	}{
		{name: "generates when missing", gen: fixedIDs{id: "generated-1"}, want: "generated-1"},
		{name: "keeps valid inbound", inbound: "client-abc_123", gen: fixedIDs{id: "generated-1"}, want: "client-abc_123"},
		{name: "replaces invalid inbound", inbound: "bad id\r\n", gen: fixedIDs{id: "generated-2"}, want: "generated-2"},
		{name: "generator failure leaves header unset", gen: fixedIDs{err: errors.New("entropy")}, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = requestIDFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/onboarding/status", nil)
			if tc.inbound != "" {
				req.Header.Set("X-Request-ID", tc.inbound)
			}
			rec := httptest.NewRecorder()
			RequestID(tc.gen, next).ServeHTTP(rec, req)

			if got := rec.Header().Get("X-Request-ID"); got != tc.want {
				t.Fatalf("unexpected response header: %q want %q", got, tc.want)
			}
			if seen != tc.want {
				t.Fatalf("unexpected context request id: %q want %q", seen, tc.want)
			}
		})
	}
}
