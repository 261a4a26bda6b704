//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bonojuntos/internal/domain/claim"
	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/clock"
	"bonojuntos/internal/usecase/commands"
	commandsmock "bonojuntos/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IssuanceCommandsTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockPromotionRepo *commandsmock.MockPromotionRepository
	mockIssuanceRepo  *commandsmock.MockIssuanceRepository
	clock             *clock.MockClock
	commands          commands.IssuanceCommands

	collaboratorID uuid.UUID
}

func (s *IssuanceCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPromotionRepo = commandsmock.NewMockPromotionRepository(s.mockCtrl)
	s.mockIssuanceRepo = commandsmock.NewMockIssuanceRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.UnixMilli(1700000000000))
	s.commands = commands.NewIssuanceCommands(s.mockPromotionRepo, s.mockIssuanceRepo, s.clock)
	s.collaboratorID = uuid.New()
}

func (s *IssuanceCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIssuanceCommandsSuite(t *testing.T) {
	suite.Run(t, new(IssuanceCommandsTestSuite))
}

func (s *IssuanceCommandsTestSuite) promotion(active bool) *commands.PromotionSnapshot {
	return &commands.PromotionSnapshot{
		ID:             42,
		CollaboratorID: s.collaboratorID,
		Title:          "2x1 Tacos",
		BusinessName:   "Taquería El Paso",
		PerUserLimit:   2,
		IsActive:       active,
	}
}

func (s *IssuanceCommandsTestSuite) TestIssueToken() {
	s.Run("success: token decodes back to a valid claim", func() {
		s.mockPromotionRepo.EXPECT().FindByID(gomock.Any(), int64(42)).
			Return(s.promotion(true), nil).Times(1)

		var stored commands.IssuanceRecord
		s.mockIssuanceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec commands.IssuanceRecord) error {
				stored = rec
				return nil
			}).Times(1)

		token, err := s.commands.IssueToken(context.Background(), 42, "u1")
		s.Require().NoError(err)

		c, err := claim.Decode(token)
		s.Require().NoError(err)
		s.Equal(claim.SupportedVersion, c.SchemaVersion)
		s.Equal(int64(42), c.PromotionID)
		s.Equal("u1", c.UserID)
		s.Equal(s.collaboratorID.String(), c.CollaboratorID)
		s.Equal(2, c.PerUserLimit)
		s.Equal(int64(1700000000000), c.IssuedAtMillis)
		s.NotEmpty(c.Nonce)

		s.Equal(c.Nonce, stored.Nonce)
		s.Equal(int64(42), stored.PromotionID)

		s.NoError(claim.Validate(c, s.clock.Now(), s.collaboratorID.String()))
	})

	s.Run("error: unknown promotion", func() {
		s.mockPromotionRepo.EXPECT().FindByID(gomock.Any(), int64(7)).
			Return(nil, infra.WrapRepoErr("find promotion", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.commands.IssueToken(context.Background(), 7, "u1")
		s.ErrorIs(err, commands.ErrPromotionNotFound)
	})

	s.Run("error: inactive promotion issues nothing", func() {
		s.mockPromotionRepo.EXPECT().FindByID(gomock.Any(), int64(42)).
			Return(s.promotion(false), nil).Times(1)

		_, err := s.commands.IssueToken(context.Background(), 42, "u1")
		s.ErrorIs(err, commands.ErrPromotionInactive)
	})

	s.Run("error: issuance store failure", func() {
		s.mockPromotionRepo.EXPECT().FindByID(gomock.Any(), int64(42)).
			Return(s.promotion(true), nil).Times(1)
		s.mockIssuanceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("create issuance", errors.New("connection refused"))).Times(1)

		_, err := s.commands.IssueToken(context.Background(), 42, "u1")
		s.ErrorIs(err, commands.ErrIssuanceFailed)
	})
}
