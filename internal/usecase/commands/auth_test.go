//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bonojuntos/internal/domain/collaborator"
	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/jwt"
	"bonojuntos/internal/pkg/password"
	"bonojuntos/internal/usecase/commands"
	commandsmock "bonojuntos/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *commandsmock.MockCollaboratorRepository
	commands commands.AuthCommands

	jwtService *jwt.Service
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockCollaboratorRepository(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour)
	s.commands = commands.NewAuthCommands(s.mockRepo, s.jwtService)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) snapshot(plainPassword string, active bool) *commands.CollaboratorSnapshot {
	hash, err := password.Hash(plainPassword)
	s.Require().NoError(err)

	return &commands.CollaboratorSnapshot{
		ID:           uuid.New(),
		Email:        "branch@example.com",
		PasswordHash: hash,
		BusinessName: "Taquería El Paso",
		Role:         "branch",
		IsActive:     active,
	}
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("success: returns a token carrying id and role", func() {
		snap := s.snapshot("password123", true)
		s.mockRepo.EXPECT().FindByEmail(gomock.Any(), "branch@example.com").
			Return(snap, nil).Times(1)

		result, err := s.commands.Login(context.Background(), "branch@example.com", "password123")
		s.Require().NoError(err)
		s.Equal(snap.ID, result.CollaboratorID)
		s.Equal(collaborator.RoleBranch, result.Role)

		claims, err := s.jwtService.ValidateToken(result.AccessToken)
		s.Require().NoError(err)
		s.Equal(snap.ID, claims.CollaboratorID)
		s.Equal("branch", claims.Role)
	})

	s.Run("error: wrong password", func() {
		s.mockRepo.EXPECT().FindByEmail(gomock.Any(), "branch@example.com").
			Return(s.snapshot("password123", true), nil).Times(1)

		_, err := s.commands.Login(context.Background(), "branch@example.com", "wrong-password")
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: unknown email", func() {
		s.mockRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, infra.WrapRepoErr("find collaborator", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.commands.Login(context.Background(), "nobody@example.com", "password123")
		s.ErrorIs(err, commands.ErrCollaboratorNotFound)
	})

	s.Run("error: inactive account", func() {
		s.mockRepo.EXPECT().FindByEmail(gomock.Any(), "branch@example.com").
			Return(s.snapshot("password123", false), nil).Times(1)

		_, err := s.commands.Login(context.Background(), "branch@example.com", "password123")
		s.ErrorIs(err, commands.ErrCollaboratorInactive)
	})
}
