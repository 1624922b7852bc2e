package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pennywise/internal/errors"
	"pennywise/internal/model"
)

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email already registered",
			email:    "existing@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
		{
			name:     "duplicate key surfaced by the insert",
			email:    "raced@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "raced@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.Register(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				// The stored hash must verify against the plaintext.
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_GetByEmail(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "user found",
			email: "test@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{ID: 7, Email: "test@example.com"}, nil)
			},
			expectedError: nil,
		},
		{
			name:  "user not found",
			email: "missing@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "missing@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.GetByEmail(context.Background(), tt.email)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(7), user.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	t.Run("password re-hashed before storage", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("UpdatePassword", mock.Anything, "test@example.com", mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password")) == nil
		})).Return(true, nil)

		svc := NewUserService(mockRepo)
		ok, err := svc.UpdatePassword(context.Background(), "test@example.com", "new-password")

		assert.NoError(t, err)
		assert.True(t, ok)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown user reported as false", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("UpdatePassword", mock.Anything, "missing@example.com", mock.Anything).Return(false, nil)

		svc := NewUserService(mockRepo)
		ok, err := svc.UpdatePassword(context.Background(), "missing@example.com", "new-password")

		assert.NoError(t, err)
		assert.False(t, ok)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("existing user deleted", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("DeleteByEmail", mock.Anything, "test@example.com").Return(true, nil)

		svc := NewUserService(mockRepo)
		ok, err := svc.Delete(context.Background(), "test@example.com")

		assert.NoError(t, err)
		assert.True(t, ok)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown user reported as false", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("DeleteByEmail", mock.Anything, "missing@example.com").Return(false, nil)

		svc := NewUserService(mockRepo)
		ok, err := svc.Delete(context.Background(), "missing@example.com")

		assert.NoError(t, err)
		assert.False(t, ok)
		mockRepo.AssertExpectations(t)
	})
}
