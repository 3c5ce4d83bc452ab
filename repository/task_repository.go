package repository

import (
	"context"

	"gorm.io/gorm"

	"taskchat-api/entity"
)

type TaskRepository struct {
	Repository[entity.Task]
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// FindVisibleByUserID returns the tasks a user may see: own tasks plus tasks
// attached to any chat the user belongs to. The membership set is fetched
// first; when it is empty the query collapses to the owner-only predicate.
// Ordered by due date then due time (nulls sort last on ascending order).
func (repository TaskRepository) FindVisibleByUserID(ctx context.Context, db *gorm.DB, userID string) ([]entity.Task, error) {
	var chatIDs []string
	err := db.WithContext(ctx).
		Model(&entity.ChatMember{}).
		Where("member_id = ?", userID).
		Pluck("chat_id", &chatIDs).Error
	if err != nil {
		return nil, err
	}

	query := db.WithContext(ctx).Model(&entity.Task{})
	if len(chatIDs) > 0 {
		query = query.Where("owner_id = ? OR chat_id IN ?", userID, chatIDs)
	} else {
		query = query.Where("owner_id = ?", userID)
	}

	var tasks []entity.Task
	err = query.Order("due_date ASC, due_time ASC").Find(&tasks).Error
	return tasks, err
}
