package model

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/schedule"
	"github.com/google/uuid"
)

var ErrNoRoomNumber = errors.New("location has no room number")

// Class учебное занятие с недельным расписанием
type Class struct {
	ID          uuid.UUID                `json:"id"`
	OwnerID     int64                    `json:"owner_id"` // telegram id владельца
	Name        string                   `json:"name"`
	Instructor  string                   `json:"instructor"`
	Location    string                   `json:"location"`
	Descriptors []string                 `json:"descriptors"` // "MoWe 09:00 - 10:30"
	Week        *schedule.WeeklySchedule `json:"-"`
	CreatedAt   time.Time                `json:"created_at"`
}

// NewClass создаёт занятие с пустым расписанием
func NewClass(ownerID int64, name, instructor, location string) *Class {
	return &Class{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       name,
		Instructor: instructor,
		Location:   location,
		Week:       schedule.NewWeeklySchedule(),
	}
}

// AddTimes разбирает дескриптор и добавляет его дни в расписание занятия.
// При ошибке расписание не меняется.
func (c *Class) AddTimes(descriptor string) error {
	ws, err := schedule.ParseWeeklySchedule(descriptor)
	if err != nil {
		return fmt.Errorf("add times: %w", err)
	}

	if c.Week == nil {
		c.Week = schedule.NewWeeklySchedule()
	}
	c.Week.Merge(ws)
	c.Descriptors = append(c.Descriptors, descriptor)
	return nil
}

// RoomNumber возвращает номер аудитории из цифр в конце Location ("Hall B 204" -> 204)
func (c *Class) RoomNumber() (int, error) {
	i := len(c.Location)
	for i > 0 && c.Location[i-1] >= '0' && c.Location[i-1] <= '9' {
		i--
	}
	if i == len(c.Location) {
		return 0, ErrNoRoomNumber
	}

	room, err := strconv.Atoi(c.Location[i:])
	if err != nil {
		return 0, fmt.Errorf("parse room number: %w", err)
	}
	return room, nil
}
