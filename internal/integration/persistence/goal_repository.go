package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	"github.com/budgetbook/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// FindByID retrieves a goal by id, or nil when absent.
func (r *goalRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// List retrieves the user's goals.
func (r *goalRepository) List(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Create inserts a new goal.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Create(model.GoalFromEntity(goal)).Error
}

// Update saves the goal.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Save(model.GoalFromEntity(goal)).Error
}

// Delete removes the goal. Account links cascade.
func (r *goalRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.GoalModel{}).Error
}

// LinkAccount attaches the account to the goal. Linking twice is a no-op.
func (r *goalRepository) LinkAccount(ctx context.Context, goalID, accountID uuid.UUID) error {
	link := &model.GoalAccountModel{GoalID: goalID, AccountID: accountID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error
}

// UnlinkAccount removes the link between the goal and the account.
func (r *goalRepository) UnlinkAccount(ctx context.Context, goalID, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("goal_id = ? AND account_id = ?", goalID, accountID).
		Delete(&model.GoalAccountModel{}).Error
}

// LinkedAccountIDs returns the account ids linked to each of the user's
// goals.
func (r *goalRepository) LinkedAccountIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	var links []model.GoalAccountModel
	result := r.db.WithContext(ctx).
		Joins("JOIN goals ON goals.id = goal_accounts.goal_id").
		Where("goals.user_id = ?", userID).
		Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	byGoal := make(map[uuid.UUID][]uuid.UUID, len(links))
	for _, link := range links {
		byGoal[link.GoalID] = append(byGoal[link.GoalID], link.AccountID)
	}
	return byGoal, nil
}
