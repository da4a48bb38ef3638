package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"clinic-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]any
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful registration",
			request: map[string]any{
				"username":      "newpatient",
				"password":      "Abc123!",
				"full_name":     "New Patient",
				"date_of_birth": "1990-06-15",
				"gender":        "female",
				"location":      "Lagos",
				"phone_number":  "08012345678",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result struct {
					Message string `json:"message"`
					UserID  uint   `json:"user_id"`
				}
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "user registered successfully", result.Message)
				assert.NotZero(t, result.UserID)
			},
		},
		{
			name: "duplicate username",
			request: map[string]any{
				"username": "existinguser",
				"password": "Abc123!",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, ts.DB)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "weak password",
			request: map[string]any{
				"username": "weakuser",
				"password": "abc123!",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing username",
			request: map[string]any{
				"password": "Abc123!",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty request body",
			request:        map[string]any{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.Truncate(t, ts.DB)

			if tt.setup != nil {
				tt.setup()
			}

			resp := postJSON(t, ts.URL("/register"), tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithUsername("loginuser").
		WithPassword("C0rrect!pw").
		Build(t, ts.DB)

	t.Run("successful login", func(t *testing.T) {
		resp := postJSON(t, ts.URL("/login"), map[string]string{
			"username": user.Username,
			"password": rawPassword,
		})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result testutil.LoginResponse
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, user.ID, result.UserID)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := postJSON(t, ts.URL("/login"), map[string]string{
			"username": user.Username,
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "required")
	})

	t.Run("wrong password and unknown user fail identically", func(t *testing.T) {
		wrongPw := postJSON(t, ts.URL("/login"), map[string]string{
			"username": user.Username,
			"password": "Wr0ng!pass",
		})
		defer wrongPw.Body.Close()
		wrongPwBody, err := io.ReadAll(wrongPw.Body)
		require.NoError(t, err)

		unknown := postJSON(t, ts.URL("/login"), map[string]string{
			"username": "nobody",
			"password": "Anyth1ng!",
		})
		defer unknown.Body.Close()
		unknownBody, err := io.ReadAll(unknown.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, wrongPw.StatusCode)
		assert.Equal(t, http.StatusUnauthorized, unknown.StatusCode)
		// identical responses keep usernames from being enumerated
		assert.Equal(t, string(wrongPwBody), string(unknownBody))
	})
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, _ := testutil.NewUserBuilder().
		WithUsername("resetuser").
		WithPassword("Old!pass1").
		Build(t, ts.DB)

	t.Run("successful reset", func(t *testing.T) {
		resp := postJSON(t, ts.URL("/reset_password"), map[string]string{
			"username":     user.Username,
			"new_password": "New!pass2",
		})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// the new password is immediately usable
		login := postJSON(t, ts.URL("/login"), map[string]string{
			"username": user.Username,
			"password": "New!pass2",
		})
		defer login.Body.Close()
		assert.Equal(t, http.StatusOK, login.StatusCode)
	})

	t.Run("unknown user", func(t *testing.T) {
		resp := postJSON(t, ts.URL("/reset_password"), map[string]string{
			"username":     "nobody",
			"new_password": "New!pass2",
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "user not found")
	})

	t.Run("weak password", func(t *testing.T) {
		resp := postJSON(t, ts.URL("/reset_password"), map[string]string{
			"username":     user.Username,
			"new_password": "weak",
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "security criteria")
	})
}
