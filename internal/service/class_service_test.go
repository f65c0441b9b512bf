package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/schedule"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryStore struct {
	classes map[uuid.UUID]*model.Class
	order   []uuid.UUID
	failErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{classes: make(map[uuid.UUID]*model.Class)}
}

func (m *memoryStore) Create(_ context.Context, class *model.Class) error {
	if m.failErr != nil {
		return m.failErr
	}
	class.CreatedAt = time.Now()
	m.classes[class.ID] = class
	m.order = append(m.order, class.ID)
	return nil
}

func (m *memoryStore) AddDescriptor(_ context.Context, classID uuid.UUID, descriptor string) error {
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.classes[classID]; !ok {
		return errors.New("missing class")
	}
	return nil
}

func (m *memoryStore) GetByID(_ context.Context, id uuid.UUID) (*model.Class, error) {
	return m.classes[id], nil
}

func (m *memoryStore) GetByOwner(_ context.Context, ownerID int64) ([]*model.Class, error) {
	var out []*model.Class
	for _, id := range m.order {
		if c, ok := m.classes[id]; ok && c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryStore) GetAll(_ context.Context) ([]*model.Class, error) {
	var out []*model.Class
	for _, id := range m.order {
		if c, ok := m.classes[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.classes, id)
	return nil
}

func newTestService() (*ClassService, *memoryStore) {
	store := newMemoryStore()
	return NewClassService(store, zap.NewNop()), store
}

func TestCreateClass(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService()

	class, err := svc.CreateClass(ctx, 7, "  Physics ", "Dr. Feynman", "Hall 101", "TuTh 10:00 - 11:15")
	require.NoError(t, err)

	assert.Equal(t, "Physics", class.Name)
	assert.Equal(t, []time.Weekday{time.Tuesday, time.Thursday}, class.Week.Days())
	assert.Contains(t, store.classes, class.ID)
}

func TestCreateClassErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty name", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.CreateClass(ctx, 7, "   ", "", "")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("bad descriptor", func(t *testing.T) {
		svc, store := newTestService()
		_, err := svc.CreateClass(ctx, 7, "Physics", "", "", "Xy 10:00 - 11:00")
		assert.ErrorIs(t, err, schedule.ErrFormat)
		assert.Empty(t, store.classes)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newTestService()
		store.failErr = errors.New("db down")
		_, err := svc.CreateClass(ctx, 7, "Physics", "", "")
		assert.ErrorIs(t, err, store.failErr)
	})
}

func TestAddTimes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	class, err := svc.CreateClass(ctx, 7, "Physics", "", "")
	require.NoError(t, err)

	updated, err := svc.AddTimes(ctx, 7, class.ID, " MoWeFr 08:00-08:50 ")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Week.Len())
	assert.Equal(t, []string{"MoWeFr 08:00-08:50"}, updated.Descriptors)

	_, err = svc.AddTimes(ctx, 8, class.ID, "Mo 08:00-08:50")
	assert.ErrorIs(t, err, ErrNotClassOwner)

	_, err = svc.AddTimes(ctx, 7, uuid.New(), "Mo 08:00-08:50")
	assert.ErrorIs(t, err, ErrClassNotFound)

	_, err = svc.AddTimes(ctx, 7, class.ID, "Mo 08:00")
	assert.ErrorIs(t, err, schedule.ErrFormat)
}

func TestDeleteClass(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService()

	class, err := svc.CreateClass(ctx, 7, "Physics", "", "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteClass(ctx, 9, class.ID), ErrNotClassOwner)
	require.NoError(t, svc.DeleteClass(ctx, 7, class.ID))
	assert.Empty(t, store.classes)
	assert.ErrorIs(t, svc.DeleteClass(ctx, 7, class.ID), ErrClassNotFound)
}

func TestTimetable(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	late, err := svc.CreateClass(ctx, 7, "Chemistry", "", "", "Mo 13:00 - 14:00")
	require.NoError(t, err)
	early, err := svc.CreateClass(ctx, 7, "Math", "", "", "MoWe 09:00 - 10:30")
	require.NoError(t, err)
	_, err = svc.CreateClass(ctx, 99, "Other", "", "", "Mo 07:00 - 08:00")
	require.NoError(t, err)

	tt, err := svc.Timetable(ctx, 7)
	require.NoError(t, err)

	monday := tt.Entries(time.Monday)
	require.Len(t, monday, 2)
	assert.Same(t, early, monday[0].Class)
	assert.Same(t, late, monday[1].Class)
	assert.Len(t, tt.Entries(time.Wednesday), 1)
	assert.Empty(t, tt.Entries(time.Sunday))
	assert.Nil(t, tt.Entries(time.Weekday(8)))
	assert.Equal(t, 3600+2*5400, tt.TotalSeconds)
}

func TestPreviewDescriptor(t *testing.T) {
	svc, _ := newTestService()

	ws, err := svc.PreviewDescriptor("SuSa 10:00 - 12:00 ")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, ws.Days())

	_, err = svc.PreviewDescriptor("Sun 10:00 - 12:00")
	assert.ErrorIs(t, err, schedule.ErrFormat)
}

func TestDailyDigests(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.CreateClass(ctx, 1, "Math", "", "", "MoWe 09:00 - 10:00")
	require.NoError(t, err)
	_, err = svc.CreateClass(ctx, 2, "Art", "", "", "Tu 09:00 - 10:00")
	require.NoError(t, err)

	digests, err := svc.DailyDigests(ctx, time.Monday)
	require.NoError(t, err)
	require.Len(t, digests, 1)
	assert.Equal(t, "Math", digests[1][0].Class.Name)
}
