package implementation

import (
	"context"
	"errors"
	"strconv"

	"traderhub-be/internal/entity"
	"traderhub-be/internal/mapper"
	"traderhub-be/internal/model"
	"traderhub-be/internal/repository/contract"
	"traderhub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AcquiredPlanRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PlanMapper
}

func NewAcquiredPlanRepository(db *gorm.DB) contract.AcquiredPlanRepository {
	return &AcquiredPlanRepositoryImpl{
		db:     db,
		mapper: mapper.NewPlanMapper(),
	}
}

func (r *AcquiredPlanRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AcquiredPlanRepositoryImpl) Create(ctx context.Context, acquired *entity.AcquiredPlan) error {
	m := r.mapper.AcquiredToModel(acquired)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*acquired = *r.mapper.AcquiredToEntity(m)
	return nil
}

func (r *AcquiredPlanRepositoryImpl) Update(ctx context.Context, acquired *entity.AcquiredPlan) error {
	m := r.mapper.AcquiredToModel(acquired)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*acquired = *r.mapper.AcquiredToEntity(m)
	return nil
}

func (r *AcquiredPlanRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AcquiredPlan{}, id).Error
}

func (r *AcquiredPlanRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AcquiredPlan, error) {
	var m model.AcquiredPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	query = query.Preload("Plan")
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AcquiredToEntity(&m), nil
}

func (r *AcquiredPlanRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AcquiredPlan, error) {
	var models []*model.AcquiredPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	query = query.Preload("Plan")
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AcquiredPlan, len(models))
	for i, m := range models {
		entities[i] = r.mapper.AcquiredToEntity(m)
	}
	return entities, nil
}

func (r *AcquiredPlanRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AcquiredPlan{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *AcquiredPlanRepositoryImpl) FindListings(ctx context.Context, specs ...specification.Specification) ([]*entity.AcquiredPlanListing, error) {
	type listingRow struct {
		model.AcquiredPlan
		ClientName  string
		ClientEmail string
		PlanName    string
		PlanPrice   float64
	}

	var rows []*listingRow
	query := r.db.WithContext(ctx).Table("planos_adquiridos").
		Select(`
			planos_adquiridos.*,
			profiles.nome as client_name,
			profiles.email as client_email,
			planos.nome_plano as plan_name,
			planos.preco as plan_price
		`).
		Joins("JOIN profiles ON planos_adquiridos.cliente_id = profiles.id").
		Joins("JOIN planos ON planos_adquiridos.plano_id = planos.id")

	query = r.applySpecifications(query, specs...)

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	listings := make([]*entity.AcquiredPlanListing, len(rows))
	for i, row := range rows {
		listings[i] = &entity.AcquiredPlanListing{
			AcquiredPlan: *r.mapper.AcquiredToEntity(&row.AcquiredPlan),
			ClientName:   row.ClientName,
			ClientEmail:  row.ClientEmail,
			PlanName:     row.PlanName,
			PlanPrice:    row.PlanPrice,
		}
	}
	return listings, nil
}

// NextWalletValue locks the client's sequence row, seeding it from the most
// recent legacy wallet id on first use, then increments and returns the new
// value. Callers must already be inside a transaction.
func (r *AcquiredPlanRepositoryImpl) NextWalletValue(ctx context.Context, clientId uuid.UUID) (int, error) {
	var seq model.WalletSequence
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("cliente_id = ?", clientId).
		First(&seq).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		seed := r.legacySeed(ctx, clientId)
		seq = model.WalletSequence{ClientId: clientId, LastValue: seed}
		if err := r.db.WithContext(ctx).Create(&seq).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	next := seq.LastValue + 1
	if err := r.db.WithContext(ctx).Model(&model.WalletSequence{}).
		Where("cliente_id = ?", clientId).
		Update("last_value", next).Error; err != nil {
		return 0, err
	}
	return next, nil
}

// legacySeed parses the client's most recent wallet id so sequences created
// for pre-existing clients continue where the old numbering stopped.
// Unparsable ids seed at zero.
func (r *AcquiredPlanRepositoryImpl) legacySeed(ctx context.Context, clientId uuid.UUID) int {
	var last model.AcquiredPlan
	err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clientId).
		Order("created_at DESC").
		First(&last).Error
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(last.WalletId)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
