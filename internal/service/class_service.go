package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/schedule"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrClassNotFound = errors.New("class not found")
	ErrNotClassOwner = errors.New("user is not the owner of this class")
	ErrEmptyName     = errors.New("class name is empty")
)

// ClassStore хранилище занятий
type ClassStore interface {
	Create(ctx context.Context, class *model.Class) error
	AddDescriptor(ctx context.Context, classID uuid.UUID, descriptor string) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]*model.Class, error)
	GetAll(ctx context.Context) ([]*model.Class, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TimetableEntry одно занятие в конкретный день недели
type TimetableEntry struct {
	Class    *model.Class
	Interval *schedule.TimeInterval
}

// Timetable сводное расписание пользователя по дням недели
type Timetable struct {
	Days         [schedule.DaysInWeek][]TimetableEntry
	TotalSeconds int
}

type ClassService struct {
	store  ClassStore
	logger *zap.Logger
}

func NewClassService(store ClassStore, logger *zap.Logger) *ClassService {
	return &ClassService{
		store:  store,
		logger: logger,
	}
}

// CreateClass создаёт занятие; descriptors (если есть) сразу разбираются в расписание
func (s *ClassService) CreateClass(ctx context.Context, ownerID int64, name, instructor, location string, descriptors ...string) (*model.Class, error) {
	s.logger.Info("CreateClass called",
		zap.Int64("owner_id", ownerID),
		zap.String("name", name),
		zap.String("instructor", instructor),
		zap.String("location", location),
		zap.Strings("descriptors", descriptors))

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	class := model.NewClass(ownerID, name, strings.TrimSpace(instructor), strings.TrimSpace(location))
	for _, descriptor := range descriptors {
		if err := class.AddTimes(strings.TrimSpace(descriptor)); err != nil {
			s.logger.Warn("Invalid schedule descriptor",
				zap.String("descriptor", descriptor),
				zap.Error(err))
			return nil, err
		}
	}

	if err := s.store.Create(ctx, class); err != nil {
		s.logger.Error("Failed to create class",
			zap.Int64("owner_id", ownerID),
			zap.Error(err))
		return nil, fmt.Errorf("create class: %w", err)
	}

	s.logger.Info("Class created",
		zap.String("class_id", class.ID.String()),
		zap.Int("days", class.Week.Len()))

	return class, nil
}

// AddTimes добавляет дескриптор расписания к занятию владельца
func (s *ClassService) AddTimes(ctx context.Context, ownerID int64, classID uuid.UUID, descriptor string) (*model.Class, error) {
	descriptor = strings.TrimSpace(descriptor)

	s.logger.Info("AddTimes called",
		zap.Int64("owner_id", ownerID),
		zap.String("class_id", classID.String()),
		zap.String("descriptor", descriptor))

	class, err := s.GetClass(ctx, ownerID, classID)
	if err != nil {
		return nil, err
	}

	if err := class.AddTimes(descriptor); err != nil {
		s.logger.Warn("Invalid schedule descriptor",
			zap.String("descriptor", descriptor),
			zap.Error(err))
		return nil, err
	}

	if err := s.store.AddDescriptor(ctx, classID, descriptor); err != nil {
		s.logger.Error("Failed to save descriptor",
			zap.String("class_id", classID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("add descriptor: %w", err)
	}

	return class, nil
}

// GetClass возвращает занятие, если оно принадлежит ownerID
func (s *ClassService) GetClass(ctx context.Context, ownerID int64, classID uuid.UUID) (*model.Class, error) {
	class, err := s.store.GetByID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("get class: %w", err)
	}
	if class == nil {
		return nil, ErrClassNotFound
	}
	if class.OwnerID != ownerID {
		s.logger.Warn("Class access denied",
			zap.Int64("owner_id", ownerID),
			zap.Int64("class_owner_id", class.OwnerID),
			zap.String("class_id", classID.String()))
		return nil, ErrNotClassOwner
	}
	return class, nil
}

// ListClasses возвращает все занятия пользователя
func (s *ClassService) ListClasses(ctx context.Context, ownerID int64) ([]*model.Class, error) {
	classes, err := s.store.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// DeleteClass удаляет занятие владельца
func (s *ClassService) DeleteClass(ctx context.Context, ownerID int64, classID uuid.UUID) error {
	if _, err := s.GetClass(ctx, ownerID, classID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, classID); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	s.logger.Info("Class deleted",
		zap.Int64("owner_id", ownerID),
		zap.String("class_id", classID.String()))
	return nil
}

// Timetable собирает расписание всех занятий пользователя по дням недели.
// Внутри дня записи отсортированы по времени начала.
func (s *ClassService) Timetable(ctx context.Context, ownerID int64) (*Timetable, error) {
	classes, err := s.ListClasses(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return BuildTimetable(classes), nil
}

// BuildTimetable раскладывает занятия по дням недели
func BuildTimetable(classes []*model.Class) *Timetable {
	tt := &Timetable{}
	for _, class := range classes {
		if class.Week == nil {
			continue
		}
		for _, day := range class.Week.Days() {
			interval := class.Week.Day(day)
			tt.Days[day] = append(tt.Days[day], TimetableEntry{Class: class, Interval: interval})
			tt.TotalSeconds += interval.DurationSeconds()
		}
	}

	for day := range tt.Days {
		entries := tt.Days[day]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Interval.Start().Before(entries[j].Interval.Start())
		})
	}
	return tt
}

// Entries возвращает записи дня недели
func (tt *Timetable) Entries(day time.Weekday) []TimetableEntry {
	if day < time.Sunday || day > time.Saturday {
		return nil
	}
	return tt.Days[day]
}

// PreviewDescriptor разбирает дескриптор без сохранения
func (s *ClassService) PreviewDescriptor(descriptor string) (*schedule.WeeklySchedule, error) {
	ws, err := schedule.ParseWeeklySchedule(strings.TrimSpace(descriptor))
	if err != nil {
		s.logger.Debug("Descriptor preview failed",
			zap.String("descriptor", descriptor),
			zap.Error(err))
		return nil, err
	}
	return ws, nil
}

// DailyDigests группирует занятия дня недели по владельцам
func (s *ClassService) DailyDigests(ctx context.Context, day time.Weekday) (map[int64][]TimetableEntry, error) {
	classes, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all classes: %w", err)
	}

	byOwner := make(map[int64][]*model.Class)
	for _, class := range classes {
		byOwner[class.OwnerID] = append(byOwner[class.OwnerID], class)
	}

	digests := make(map[int64][]TimetableEntry)
	for ownerID, owned := range byOwner {
		entries := BuildTimetable(owned).Entries(day)
		if len(entries) > 0 {
			digests[ownerID] = entries
		}
	}

	s.logger.Info("Daily digests built",
		zap.String("weekday", day.String()),
		zap.Int("owners", len(digests)))

	return digests, nil
}
