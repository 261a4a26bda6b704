package commands

import (
	"context"

	"bonojuntos/internal/domain/collaborator"
	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/errs"
	"bonojuntos/internal/pkg/jwt"
	"bonojuntos/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrCollaboratorNotFound = errs.New("collaborator not found")
	ErrCollaboratorInactive = errs.New("collaborator is inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
)

type CollaboratorRepository interface {
	FindByEmail(ctx context.Context, email string) (*CollaboratorSnapshot, error)
}

type LoginResult struct {
	CollaboratorID uuid.UUID
	Role           collaborator.Role
	AccessToken    string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	collaboratorRepo CollaboratorRepository
	jwtService       *jwt.Service
}

func NewAuthCommands(collaboratorRepo CollaboratorRepository, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		collaboratorRepo: collaboratorRepo,
		jwtService:       jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	snap, err := a.collaboratorRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCollaboratorNotFound
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if !snap.IsActive {
		return nil, ErrCollaboratorInactive
	}

	if err := password.Verify(snap.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := collaborator.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return &LoginResult{
		CollaboratorID: snap.ID,
		Role:           role,
		AccessToken:    token,
	}, nil
}
