package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hobbyverse/internal/config"
	"hobbyverse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Stats(ctx context.Context, id uint) (*models.UserStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

func (m *MockUserRepository) FindByHobby(ctx context.Context, hobby string, excludeUserID uint) ([]models.UserSummary, error) {
	args := m.Called(ctx, hobby, excludeUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSummary), args.Error(1)
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(m *MockUserRepository)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: map[string]string{
				"name":     "Test User",
				"email":    "test@example.com",
				"password": "password123",
			},
			mockSetup: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing fields",
			body: map[string]string{
				"email": "test@example.com",
			},
			mockSetup:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "All fields are required.",
		},
		{
			name: "Duplicate email",
			body: map[string]string{
				"name":     "Test User",
				"email":    "exists@example.com",
				"password": "password123",
			},
			mockSetup: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(models.NewValidationError("Email already in use."))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email already in use.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockUserRepository)
			s := &Server{
				config:   &config.Config{JWTSecret: "test_secret"},
				userRepo: mockRepo,
			}
			app.Post("/signup", s.Signup)

			tt.mockSetup(mockRepo)
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedError != "" {
				var errBody struct {
					Error string `json:"error"`
				}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
				assert.Equal(t, tt.expectedError, errBody.Error)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	existing := &models.User{ID: 42, Name: "Existing", Email: "known@example.com", Password: string(hashed)}

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(m *MockUserRepository)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: map[string]string{"email": "known@example.com", "password": "correct-password"},
			mockSetup: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "known@example.com").Return(existing, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Unknown email",
			body: map[string]string{"email": "nobody@example.com", "password": "whatever"},
			mockSetup: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid credentials.",
		},
		{
			name: "Wrong password",
			body: map[string]string{"email": "known@example.com", "password": "wrong"},
			mockSetup: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "known@example.com").Return(existing, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid credentials.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockUserRepository)
			s := &Server{
				config:   &config.Config{JWTSecret: "test_secret"},
				userRepo: mockRepo,
			}
			app.Post("/login", s.Login)

			tt.mockSetup(mockRepo)
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedError != "" {
				var errBody struct {
					Error string `json:"error"`
				}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
				assert.Equal(t, tt.expectedError, errBody.Error)
			}
		})
	}
}

func TestGenerateTokenClaims(t *testing.T) {
	s := &Server{config: &config.Config{JWTSecret: "test_secret"}}

	tokenString, err := s.generateToken(7)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "7", claims["sub"])
	assert.Equal(t, "hobbyverse-api", claims["iss"])
	assert.Equal(t, "hobbyverse-client", claims["aud"])
	assert.NotEmpty(t, claims["jti"])
}
