package postgres

import (
	"context"
	"time"

	"finsight/internal/domain/entity"
	"finsight/internal/domain/repository"
	"finsight/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// transactionRepository implements the repository.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// UpsertBatch inserts or updates canonical records keyed by
// (user_id, provider, external_id). The batch is deduplicated on that key
// first: Postgres rejects an upsert that touches the same row twice.
func (repo *transactionRepository) UpsertBatch(ctx context.Context, records []*entity.Transaction) (*repository.UpsertResult, error) {
	if len(records) == 0 {
		return &repository.UpsertResult{}, nil
	}

	deduped := dedupeByExternalID(records)

	existing, err := repo.existingExternalIDs(ctx, deduped)
	if err != nil {
		return nil, err
	}

	transactionModels := make([]*model.TransactionModel, 0, len(deduped))
	for _, record := range deduped {
		transactionModels = append(transactionModels, fromTransactionDomain(record))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}, {Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"description", "amount", "type", "source", "category", "date", "updated_at",
			}),
		}).
		Create(&transactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to upsert transactions")
	}

	return &repository.UpsertResult{
		Inserted: len(deduped) - len(existing),
		Updated:  len(existing),
	}, nil
}

// FindRecentByUser returns records dated on or after since, newest first.
func (repo *transactionRepository) FindRecentByUser(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*entity.Transaction, error) {
	var transactionModels []*model.TransactionModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC, created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent transactions")
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for _, transactionM := range transactionModels {
		transactions = append(transactions, toTransactionDomain(transactionM))
	}

	return transactions, nil
}

// existingExternalIDs looks up which of the batch's sync keys already have
// rows, so the upsert outcome can be split into inserted and updated counts.
func (repo *transactionRepository) existingExternalIDs(ctx context.Context, records []*entity.Transaction) (map[string]struct{}, error) {
	existing := make(map[string]struct{})

	// A batch normally comes from a single adapter run, but group by
	// (user, provider) anyway so mixed batches count correctly.
	type syncGroup struct {
		userID   uuid.UUID
		provider entity.ProviderType
	}
	groups := make(map[syncGroup][]string)
	for _, record := range records {
		key := syncGroup{userID: record.UserID, provider: record.Provider}
		groups[key] = append(groups[key], record.ExternalID)
	}

	for group, externalIDs := range groups {
		var found []string
		if err := repo.db.WithContext(ctx).
			Model(&model.TransactionModel{}).
			Where("user_id = ? AND provider = ? AND external_id IN ?", group.userID, group.provider, externalIDs).
			Pluck("external_id", &found).Error; err != nil {
			return nil, errors.Wrap(err, "failed to look up existing transactions")
		}
		for _, externalID := range found {
			existing[group.userID.String()+":"+string(group.provider)+":"+externalID] = struct{}{}
		}
	}

	return existing, nil
}

// dedupeByExternalID keeps the last occurrence per sync key, preserving
// batch order otherwise.
func dedupeByExternalID(records []*entity.Transaction) []*entity.Transaction {
	lastIndex := make(map[string]int, len(records))
	for i, record := range records {
		lastIndex[syncKey(record)] = i
	}

	deduped := make([]*entity.Transaction, 0, len(lastIndex))
	for i, record := range records {
		if lastIndex[syncKey(record)] == i {
			deduped = append(deduped, record)
		}
	}

	return deduped
}

func syncKey(record *entity.Transaction) string {
	return record.UserID.String() + ":" + string(record.Provider) + ":" + record.ExternalID
}

func toTransactionDomain(transactionM *model.TransactionModel) *entity.Transaction {
	return &entity.Transaction{
		ID:          transactionM.ID,
		UserID:      transactionM.UserID,
		Provider:    entity.ProviderType(transactionM.Provider),
		ExternalID:  transactionM.ExternalID,
		Description: transactionM.Description,
		Amount:      transactionM.Amount,
		Type:        entity.TransactionType(transactionM.Type),
		Source:      transactionM.Source,
		Category:    transactionM.Category,
		Date:        transactionM.Date,
		CreatedAt:   transactionM.CreatedAt,
		UpdatedAt:   transactionM.UpdatedAt,
	}
}

func fromTransactionDomain(record *entity.Transaction) *model.TransactionModel {
	return &model.TransactionModel{
		ID:          record.ID,
		UserID:      record.UserID,
		Provider:    string(record.Provider),
		ExternalID:  record.ExternalID,
		Description: record.Description,
		Amount:      record.Amount,
		Type:        string(record.Type),
		Source:      record.Source,
		Category:    record.Category,
		Date:        record.Date,
	}
}
