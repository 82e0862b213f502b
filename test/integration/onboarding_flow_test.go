package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"talentmatch-be/internal/bootstrap"
	"talentmatch-be/internal/config"
	"talentmatch-be/internal/dto"
	"talentmatch-be/internal/model"
	"talentmatch-be/internal/server"
	"talentmatch-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestOnboardingFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
		os.Setenv("JWT_SECRET", "default_secret")
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	require.NoError(t, err, "Failed to connect to DB")

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	// 1. Seed an active candidate
	password := "candidate123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	hashStr := string(hash)

	userId := uuid.New()
	email := fmt.Sprintf("flow-%s@example.com", userId.String()[:8])
	user := &model.User{
		Id:            userId,
		Email:         email,
		FullName:      "Flow Candidate",
		PasswordHash:  &hashStr,
		Role:          "candidate",
		Status:        "active",
		EmailVerified: true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	require.NoError(t, db.Create(user).Error)
	defer func() {
		db.Unscoped().Delete(&model.User{}, userId)
		db.Exec("DELETE FROM candidate_profiles WHERE user_id = ?", userId)
		db.Exec("DELETE FROM candidate_preferences WHERE user_id = ?", userId)
		db.Exec("DELETE FROM onboarding_states WHERE user_id = ?", userId)
		db.Exec("DELETE FROM user_refresh_tokens WHERE user_id = ?", userId)
	}()

	// 2. Login
	var login dto.LoginResponse
	env := doJSON(t, app, "POST", "/api/auth/login", "", dto.LoginRequest{
		Email:    email,
		Password: password,
	})
	require.True(t, env.Success, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.AccessToken)
	token := login.AccessToken

	// 3. Start onboarding at welcome
	var state dto.NavigationStateResponse
	env = doJSON(t, app, "POST", "/api/onboarding/start", token, dto.StartOnboardingRequest{})
	require.True(t, env.Success, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Equal(t, "onboarding", state.Mode)
	assert.Equal(t, "welcome", state.ActiveSection)

	// 4. Forward past welcome
	var fwd dto.ForwardResponse
	env = doJSON(t, app, "POST", "/api/onboarding/forward", token, nil)
	require.True(t, env.Success, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &fwd))
	assert.True(t, fwd.Advanced)
	assert.Equal(t, "personal", fwd.State.ActiveSection)

	// 5. Personal gates until its essential fields are filled
	resp, err := app.Test(newJSONRequest(t, "POST", "/api/onboarding/forward", token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	fullName := "Flow Candidate"
	env = doJSON(t, app, "PATCH", "/api/profile", token, dto.UpdateAggregateRequest{
		FullName: &fullName,
		Email:    &email,
	})
	require.True(t, env.Success, env.Message)

	env = doJSON(t, app, "POST", "/api/onboarding/forward", token, nil)
	require.True(t, env.Success, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &fwd))
	assert.True(t, fwd.Advanced)
	assert.Equal(t, "roles", fwd.State.ActiveSection)
	require.NotNil(t, fwd.Save)
	assert.True(t, fwd.Save.Ok)

	// 6. The completed step is persisted
	env = doJSON(t, app, "GET", "/api/onboarding/state", token, nil)
	require.True(t, env.Success, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Contains(t, state.CompletedSteps, "welcome")
	assert.Contains(t, state.CompletedSteps, "personal")
}

func newJSONRequest(t *testing.T, method, path, token string, body interface{}) *http.Request {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) envelope {
	t.Helper()

	resp, err := app.Test(newJSONRequest(t, method, path, token, body), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}
