//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bonojuntos/internal/domain/claim"
	"bonojuntos/internal/domain/redemption"
	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/clock"
	"bonojuntos/internal/pkg/config"
	"bonojuntos/internal/usecase/commands"
	"bonojuntos/tests/common/builder"
	commandsmock "bonojuntos/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var scanTime = time.UnixMilli(1700000000000).UTC()

type RedemptionCommandsTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockPromotionRepo  *commandsmock.MockPromotionRepository
	mockRedemptionRepo *commandsmock.MockRedemptionRepository
	clock              *clock.MockClock
	commands           commands.RedemptionCommands
}

func (s *RedemptionCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPromotionRepo = commandsmock.NewMockPromotionRepository(s.mockCtrl)
	s.mockRedemptionRepo = commandsmock.NewMockRedemptionRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(scanTime.Add(time.Minute))
	s.commands = commands.NewRedemptionCommands(
		s.mockPromotionRepo, s.mockRedemptionRepo, s.clock, config.NewTestConfig())
}

func (s *RedemptionCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedemptionCommandsSuite(t *testing.T) {
	suite.Run(t, new(RedemptionCommandsTestSuite))
}

func (s *RedemptionCommandsTestSuite) TestProcessScan() {
	branchID := uuid.New()
	token := builder.NewClaimBuilder().BuildToken()

	s.Run("success: enriches the record with promotion display data", func() {
		s.mockPromotionRepo.EXPECT().FindByID(gomock.Any(), int64(42)).
			Return(&commands.PromotionSnapshot{
				ID:           42,
				Title:        "2x1 Tacos",
				BusinessName: "Taquería El Paso",
				PerUserLimit: 2,
				IsActive:     true,
			}, nil).Times(1)

		record, err := s.commands.ProcessScan(context.Background(), token, "c1", branchID)
		s.Require().NoError(err)
		s.Equal(int64(42), record.PromotionID)
		s.Equal("u1", record.UserID)
		s.Equal("u1", record.UserName)
		s.Equal("abc123", record.Nonce)
		s.Equal(branchID, record.BranchID)
		s.Equal("2x1 Tacos", record.PromotionTitle)
		s.Equal("Taquería El Paso", record.BusinessName)
		s.Equal(scanTime, record.IssuedAt.UTC())
	})

	s.Run("success: degrades to placeholders when the lookup fails", func() {
		s.mockPromotionRepo.EXPECT().FindByID(gomock.Any(), int64(42)).
			Return(nil, infra.WrapRepoErr("find promotion", errors.New("connection refused"))).Times(1)

		record, err := s.commands.ProcessScan(context.Background(), token, "c1", branchID)
		s.Require().NoError(err)
		s.Equal("Promoción", record.PromotionTitle)
		s.Equal("Colaborador", record.BusinessName)
	})

	s.Run("error: malformed token never reaches the repositories", func() {
		_, err := s.commands.ProcessScan(context.Background(), "xx|v=1", "c1", branchID)
		s.ErrorIs(err, commands.ErrInvalidToken)

		var decodeErr *claim.DecodeError
		s.ErrorAs(err, &decodeErr)
	})

	s.Run("error: rejected claim keeps its validation sentinel", func() {
		s.clock.Set(scanTime.Add(48 * time.Hour))
		defer s.clock.Set(scanTime.Add(time.Minute))

		_, err := s.commands.ProcessScan(context.Background(), token, "c1", branchID)
		s.ErrorIs(err, commands.ErrClaimRejected)
		s.ErrorIs(err, claim.ErrExpired)
	})

	s.Run("error: another merchant's token is rejected before lookup", func() {
		_, err := s.commands.ProcessScan(context.Background(), token, "c2", branchID)
		s.ErrorIs(err, commands.ErrClaimRejected)
		s.ErrorIs(err, claim.ErrMerchantMismatch)
	})
}

func (s *RedemptionCommandsTestSuite) TestConfirm() {
	record := &redemption.ConfirmationRecord{
		PromotionID:    42,
		UserID:         "u1",
		CollaboratorID: "c1",
		BranchID:       uuid.New(),
		Nonce:          "abc123",
		IssuedAt:       scanTime,
	}

	s.Run("success: returns the stored redemption id", func() {
		redemptionID := uuid.New()
		s.mockRedemptionRepo.EXPECT().
			Create(gomock.Any(), commands.RedemptionRecord{
				UserID:      "u1",
				PromotionID: 42,
				BranchID:    record.BranchID,
				Nonce:       "abc123",
				IssuedAt:    scanTime,
			}).
			Return(redemptionID, nil).Times(1)

		result, err := s.commands.Confirm(context.Background(), record)
		s.Require().NoError(err)
		s.Equal(redemptionID, result.RedemptionID)
	})

	s.Run("error: duplicate nonce is a terminal conflict", func() {
		s.mockRedemptionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("create redemption",
				errors.New("duplicate key"), infra.KindDuplicateKey)).Times(1)

		_, err := s.commands.Confirm(context.Background(), record)
		s.ErrorIs(err, commands.ErrRedemptionConflict)
		s.NotErrorIs(err, commands.ErrRedemptionFailed)
	})

	s.Run("error: store failure is retriable-after-verification", func() {
		s.mockRedemptionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("create redemption", context.DeadlineExceeded)).Times(1)

		_, err := s.commands.Confirm(context.Background(), record)
		s.ErrorIs(err, commands.ErrRedemptionFailed)
		s.NotErrorIs(err, commands.ErrRedemptionConflict)
	})
}
