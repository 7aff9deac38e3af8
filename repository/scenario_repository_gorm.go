package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"acquisition-calc/domain"
)

// scenarioRecord is the scenarios table. It stores inputs only.
type scenarioRecord struct {
	ID           string `gorm:"type:varchar(36);primaryKey"`
	BusinessName string `gorm:"type:varchar(200);not null"`

	SDE            float64 `gorm:"column:sde;not null"`
	Price          float64 `gorm:"not null"`
	OptionalSalary float64 `gorm:"not null"`
	ExtraCosts     float64 `gorm:"not null"`
	Capex          float64 `gorm:"not null"`
	ConsultingFee  float64 `gorm:"not null"`

	PctDownPayment float64 `gorm:"not null"`
	PctSellerCarry float64 `gorm:"not null"`
	PctJuniorDebt  float64 `gorm:"not null"`

	LoanFee      float64 `gorm:"not null"`
	ClosingCosts float64 `gorm:"not null"`
	OtherFees    float64 `gorm:"not null"`

	SellerDurationMonths  int     `gorm:"not null"`
	SellerInterestPercent float64 `gorm:"not null"`
	JuniorDurationMonths  int     `gorm:"not null"`
	JuniorInterestPercent float64 `gorm:"not null"`
	SBADurationMonths     int     `gorm:"column:sba_duration_months;not null"`
	SBAInterestPercent    float64 `gorm:"column:sba_interest_percent;not null"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;index"`
}

func (scenarioRecord) TableName() string {
	return "scenarios"
}

func newScenarioRecord(id string, s domain.BusinessScenario) scenarioRecord {
	return scenarioRecord{
		ID:                    id,
		BusinessName:          s.BusinessName,
		SDE:                   s.SDE,
		Price:                 s.Price,
		OptionalSalary:        s.OptionalSalary,
		ExtraCosts:            s.ExtraCosts,
		Capex:                 s.Capex,
		ConsultingFee:         s.ConsultingFee,
		PctDownPayment:        s.PctDownPayment,
		PctSellerCarry:        s.PctSellerCarry,
		PctJuniorDebt:         s.PctJuniorDebt,
		LoanFee:               s.LoanFee,
		ClosingCosts:          s.ClosingCosts,
		OtherFees:             s.OtherFees,
		SellerDurationMonths:  s.SellerDurationMonths,
		SellerInterestPercent: s.SellerInterestPercent,
		JuniorDurationMonths:  s.JuniorDurationMonths,
		JuniorInterestPercent: s.JuniorInterestPercent,
		SBADurationMonths:     s.SBADurationMonths,
		SBAInterestPercent:    s.SBAInterestPercent,
	}
}

func (r scenarioRecord) toDomain() domain.Scenario {
	return domain.Scenario{
		ID: r.ID,
		Scenario: domain.BusinessScenario{
			BusinessName:          r.BusinessName,
			SDE:                   r.SDE,
			Price:                 r.Price,
			OptionalSalary:        r.OptionalSalary,
			ExtraCosts:            r.ExtraCosts,
			Capex:                 r.Capex,
			ConsultingFee:         r.ConsultingFee,
			PctDownPayment:        r.PctDownPayment,
			PctSellerCarry:        r.PctSellerCarry,
			PctJuniorDebt:         r.PctJuniorDebt,
			LoanFee:               r.LoanFee,
			ClosingCosts:          r.ClosingCosts,
			OtherFees:             r.OtherFees,
			SellerDurationMonths:  r.SellerDurationMonths,
			SellerInterestPercent: r.SellerInterestPercent,
			JuniorDurationMonths:  r.JuniorDurationMonths,
			JuniorInterestPercent: r.JuniorInterestPercent,
			SBADurationMonths:     r.SBADurationMonths,
			SBAInterestPercent:    r.SBAInterestPercent,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ScenarioRepositoryGorm stores scenarios in Postgres.
type ScenarioRepositoryGorm struct {
	db *gorm.DB
}

func NewScenarioRepositoryGorm(db *gorm.DB) *ScenarioRepositoryGorm {
	return &ScenarioRepositoryGorm{db: db}
}

func (r *ScenarioRepositoryGorm) Create(
	ctx context.Context,
	scenario domain.BusinessScenario,
) (string, error) {
	now := time.Now().UTC()
	rec := newScenarioRecord(uuid.NewString(), scenario)
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", fmt.Errorf("failed to create scenario: %w", err)
	}
	return rec.ID, nil
}

func (r *ScenarioRepositoryGorm) GetByID(ctx context.Context, id string) (domain.Scenario, error) {
	var rec scenarioRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Scenario{}, ErrNotFound
	}
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("failed to get scenario: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *ScenarioRepositoryGorm) List(ctx context.Context) ([]domain.ScenarioSummary, error) {
	var rows []scenarioRecord
	err := r.db.WithContext(ctx).
		Select("id", "business_name", "price", "sde", "updated_at").
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}

	out := make([]domain.ScenarioSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain().Summary())
	}
	return out, nil
}

func (r *ScenarioRepositoryGorm) Update(
	ctx context.Context,
	id string,
	scenario domain.BusinessScenario,
) error {
	rec := newScenarioRecord(id, scenario)
	rec.UpdatedAt = time.Now().UTC()

	// Select("*") writes zero values too, so the row is fully replaced.
	res := r.db.WithContext(ctx).
		Model(&scenarioRecord{}).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(&rec)
	if res.Error != nil {
		return fmt.Errorf("failed to update scenario: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ScenarioRepositoryGorm) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&scenarioRecord{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete scenario: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ScenarioRepositoryGorm) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
