package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/repository/base"
	"github.com/Freeeeeet/timetable_bot/internal/schedule"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ClassRepository хранит занятия и их дескрипторы расписания.
// Недельное расписание не хранится отдельно: оно собирается заново из дескрипторов.
type ClassRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewClassRepository создаёт новый репозиторий
func NewClassRepository(pool *pgxpool.Pool, logger *zap.Logger) *ClassRepository {
	return &ClassRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// Create сохраняет занятие вместе с его дескрипторами
func (r *ClassRepository) Create(ctx context.Context, class *model.Class) error {
	return r.InTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO classes (id, owner_id, name, instructor, location)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			class.ID,
			class.OwnerID,
			class.Name,
			class.Instructor,
			class.Location,
		).Scan(&class.CreatedAt)
		if err != nil {
			return fmt.Errorf("create class: %w", err)
		}

		for _, descriptor := range class.Descriptors {
			if err := insertDescriptor(ctx, tx, class.ID, descriptor); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddDescriptor сохраняет ещё один дескриптор расписания занятия
func (r *ClassRepository) AddDescriptor(ctx context.Context, classID uuid.UUID, descriptor string) error {
	return r.InTx(ctx, func(tx pgx.Tx) error {
		return insertDescriptor(ctx, tx, classID, descriptor)
	})
}

func insertDescriptor(ctx context.Context, tx pgx.Tx, classID uuid.UUID, descriptor string) error {
	query := `INSERT INTO class_times (class_id, descriptor) VALUES ($1, $2)`

	if _, err := tx.Exec(ctx, query, classID, descriptor); err != nil {
		return fmt.Errorf("insert class descriptor: %w", err)
	}
	return nil
}

// GetByID получает занятие по ID, nil если не найдено
func (r *ClassRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	query := `
		SELECT id, owner_id, name, instructor, location, created_at
		FROM classes
		WHERE id = $1
	`

	class := &model.Class{}
	err := r.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.OwnerID,
		&class.Name,
		&class.Instructor,
		&class.Location,
		&class.CreatedAt,
	)
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get class by id: %w", err)
	}

	if err := r.loadTimes(ctx, []*model.Class{class}); err != nil {
		return nil, err
	}
	return class, nil
}

// GetByOwner получает все занятия пользователя в порядке создания
func (r *ClassRepository) GetByOwner(ctx context.Context, ownerID int64) ([]*model.Class, error) {
	query := `
		SELECT id, owner_id, name, instructor, location, created_at
		FROM classes
		WHERE owner_id = $1
		ORDER BY created_at, name
	`
	return r.queryClasses(ctx, query, ownerID)
}

// GetAll получает все занятия всех пользователей
func (r *ClassRepository) GetAll(ctx context.Context) ([]*model.Class, error) {
	query := `
		SELECT id, owner_id, name, instructor, location, created_at
		FROM classes
		ORDER BY owner_id, created_at
	`
	return r.queryClasses(ctx, query)
}

func (r *ClassRepository) queryClasses(ctx context.Context, query string, args ...interface{}) ([]*model.Class, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query classes: %w", err)
	}
	defer rows.Close()

	var classes []*model.Class
	for rows.Next() {
		class := &model.Class{}
		err := rows.Scan(
			&class.ID,
			&class.OwnerID,
			&class.Name,
			&class.Instructor,
			&class.Location,
			&class.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate classes: %w", err)
	}

	if err := r.loadTimes(ctx, classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// loadTimes подгружает дескрипторы и собирает недельное расписание каждого занятия
func (r *ClassRepository) loadTimes(ctx context.Context, classes []*model.Class) error {
	if len(classes) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*model.Class, len(classes))
	ids := make([]uuid.UUID, 0, len(classes))
	for _, class := range classes {
		class.Week = schedule.NewWeeklySchedule()
		byID[class.ID] = class
		ids = append(ids, class.ID)
	}

	query := `
		SELECT class_id, descriptor
		FROM class_times
		WHERE class_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("get class descriptors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var classID uuid.UUID
		var descriptor string
		if err := rows.Scan(&classID, &descriptor); err != nil {
			return fmt.Errorf("scan class descriptor: %w", err)
		}

		class, ok := byID[classID]
		if !ok {
			continue
		}
		if err := class.AddTimes(descriptor); err != nil {
			// Битые дескрипторы пропускаются, остальные дни остаются
			r.logger.Warn("Skipping invalid stored descriptor",
				zap.String("class_id", classID.String()),
				zap.String("descriptor", descriptor),
				zap.Error(err))
		}
	}
	return rows.Err()
}

// Delete удаляет занятие вместе с дескрипторами
func (r *ClassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM classes WHERE id = $1`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	if affected == 0 {
		r.logger.Debug("Delete affected no rows", zap.String("class_id", id.String()))
	}
	return nil
}
