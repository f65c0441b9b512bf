package app

import (
	"context"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/service"
	"go.uber.org/zap"
)

// DigestSender отправляет владельцу список занятий на день
type DigestSender interface {
	SendDigest(ctx context.Context, ownerID int64, day time.Weekday, entries []service.TimetableEntry) error
}

// Scheduler раз в сутки рассылает расписание на текущий день
type Scheduler struct {
	classService *service.ClassService
	sender       DigestSender
	digestHour   int
	logger       *zap.Logger
	stopChan     chan struct{}
	now          func() time.Time
}

// NewScheduler создаёт новый планировщик
func NewScheduler(classService *service.ClassService, sender DigestSender, digestHour int, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		classService: classService,
		sender:       sender,
		digestHour:   digestHour,
		logger:       logger,
		stopChan:     make(chan struct{}),
		now:          time.Now,
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler", zap.Int("digest_hour", s.digestHour))

	go s.runDigestTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

func (s *Scheduler) runDigestTask(ctx context.Context) {
	for {
		wait := nextRun(s.now(), s.digestHour).Sub(s.now())
		timer := time.NewTimer(wait)

		select {
		case <-timer.C:
			s.SendDigests(ctx, s.now().Weekday())
		case <-s.stopChan:
			timer.Stop()
			s.logger.Info("Digest task stopped")
			return
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Digest task cancelled")
			return
		}
	}
}

// nextRun возвращает ближайший момент hour:00 строго после now
func nextRun(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// SendDigests рассылает расписание на day всем владельцам с занятиями в этот день
func (s *Scheduler) SendDigests(ctx context.Context, day time.Weekday) {
	s.logger.Info("Sending daily digests", zap.String("weekday", day.String()))

	digests, err := s.classService.DailyDigests(ctx, day)
	if err != nil {
		s.logger.Error("Failed to build digests", zap.Error(err))
		return
	}

	sent := 0
	for ownerID, entries := range digests {
		if err := s.sender.SendDigest(ctx, ownerID, day, entries); err != nil {
			s.logger.Error("Failed to send digest",
				zap.Int64("owner_id", ownerID),
				zap.Error(err))
			continue
		}
		sent++
	}

	s.logger.Info("Daily digests sent", zap.Int("sent", sent), zap.Int("total", len(digests)))
}
