package provider

import (
	"encoding/json"
	"iranscbot/internal/core/domain"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJokeAPI_Random(t *testing.T) {
	tests := []struct {
		name           string
		responseBody   interface{}
		responseStatus int
		want           domain.Joke
		wantKind       domain.FailureKind
	}{
		{
			name:           "single",
			responseBody:   map[string]interface{}{"error": false, "type": "single", "joke": "X"},
			responseStatus: http.StatusOK,
			want:           domain.Joke{Type: domain.SingleJoke, Text: "X"},
		},
		{
			name: "twopart",
			responseBody: map[string]interface{}{
				"error": false, "type": "twopart", "setup": "A", "delivery": "B",
			},
			responseStatus: http.StatusOK,
			want:           domain.Joke{Type: domain.TwoPartJoke, Setup: "A", Delivery: "B"},
		},
		{
			name:           "unknown type is passed through",
			responseBody:   map[string]interface{}{"error": false, "type": "riddle"},
			responseStatus: http.StatusOK,
			want:           domain.Joke{Type: "riddle"},
		},
		{
			name: "no matching joke",
			responseBody: map[string]interface{}{
				"error": true, "code": 106, "message": "No matching joke found",
			},
			responseStatus: http.StatusBadRequest,
			wantKind:       domain.FailureNotFound,
		},
		{
			name: "api error",
			responseBody: map[string]interface{}{
				"error": true, "code": 105, "message": "Blacklisted Category/Flag",
			},
			responseStatus: http.StatusBadRequest,
			wantKind:       domain.FailureUpstream,
		},
		{
			name:           "server error",
			responseBody:   "down",
			responseStatus: http.StatusBadGateway,
			wantKind:       domain.FailureUpstream,
		},
		{
			name:           "malformed JSON",
			responseBody:   "{not_json}",
			responseStatus: http.StatusOK,
			wantKind:       domain.FailureUnexpected,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/joke/Any", r.URL.Path)

				w.WriteHeader(tc.responseStatus)
				switch b := tc.responseBody.(type) {
				case string:
					w.Write([]byte(b))
				default:
					json.NewEncoder(w).Encode(b)
				}
			}))
			defer srv.Close()

			api := NewJokeAPI(srv.URL, "", time.Second)

			got, err := api.Random(t.Context())

			assert.Equal(t, tc.wantKind, domain.KindOf(err))
			if tc.wantKind == domain.NoFailure {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestJokeAPI_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := NewJokeAPI(addr, "Programming", time.Second).Random(t.Context())

	require.Error(t, err)
	assert.Equal(t, domain.FailureUnexpected, domain.KindOf(err))
}
