package usecase

import (
	"context"

	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InsightsUsecase surfaces admin-only reads over the server-side SQL
// functions and the audit trail.
type InsightsUsecase interface {
	GetPatientAges(ctx context.Context) ([]repository.PatientAgeRow, error)
	GetPrescriptionCosts(ctx context.Context) ([]repository.PrescriptionCostRow, error)
	GetSummary(ctx context.Context) (*repository.ActivitySummary, error)
	GetRecentAuditLogs(ctx context.Context, limit int) ([]entity.AuditLog, error)
}

type insightsUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	insightsRepo repository.InsightsRepository
	auditRepo    repository.AuditLogRepository
}

func NewInsightsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	insightsRepo repository.InsightsRepository,
	auditRepo repository.AuditLogRepository,
) InsightsUsecase {
	return &insightsUsecase{
		db:           db,
		log:          log,
		insightsRepo: insightsRepo,
		auditRepo:    auditRepo,
	}
}

func (u *insightsUsecase) GetPatientAges(ctx context.Context) ([]repository.PatientAgeRow, error) {
	rows, err := u.insightsRepo.PatientAges(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to compute patient ages: %+v", err)
		return nil, err
	}
	return rows, nil
}

func (u *insightsUsecase) GetPrescriptionCosts(ctx context.Context) ([]repository.PrescriptionCostRow, error) {
	rows, err := u.insightsRepo.PrescriptionCosts(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to compute prescription costs: %+v", err)
		return nil, err
	}
	return rows, nil
}

func (u *insightsUsecase) GetSummary(ctx context.Context) (*repository.ActivitySummary, error) {
	summary, err := u.insightsRepo.Summary(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to build activity summary: %+v", err)
		return nil, err
	}
	return summary, nil
}

func (u *insightsUsecase) GetRecentAuditLogs(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	logs, err := u.auditRepo.FindRecent(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}
	return logs, nil
}
