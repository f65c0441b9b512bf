package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerDialogFlow(t *testing.T) {
	sm := NewManager()
	const user = int64(100)

	assert.Equal(t, StateNone, sm.GetState(user))

	sm.SetState(user, StateAddClassName)
	sm.Advance(user, KeyClassName, "Physics", StateAddClassInstructor)
	sm.Advance(user, KeyClassInstructor, "Dr. Feynman", StateAddClassLocation)

	assert.Equal(t, StateAddClassLocation, sm.GetState(user))
	name, ok := sm.GetData(user, KeyClassName)
	assert.True(t, ok)
	assert.Equal(t, "Physics", name)

	data := sm.GetAllData(user)
	data[KeyClassName] = "changed"
	name, _ = sm.GetData(user, KeyClassName)
	assert.Equal(t, "Physics", name)

	sm.ClearState(user)
	assert.Equal(t, StateNone, sm.GetState(user))
	_, ok = sm.GetData(user, KeyClassName)
	assert.False(t, ok)
	assert.Nil(t, sm.GetAllData(user))
}

func TestManagerSetStateNoneClears(t *testing.T) {
	sm := NewManager()
	sm.SetData(1, KeyClassLocation, "Hall 1")
	sm.SetState(1, StateAddClassTimes)

	sm.SetState(1, StateNone)

	_, ok := sm.GetData(1, KeyClassLocation)
	assert.False(t, ok)
}

func TestManagerConcurrentAccess(t *testing.T) {
	sm := NewManager()

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			sm.SetState(id, StateAddClassName)
			sm.Advance(id, KeyClassName, "x", StateAddClassInstructor)
			_ = sm.GetState(id)
		}(i)
	}
	wg.Wait()

	for i := int64(0); i < 50; i++ {
		assert.Equal(t, StateAddClassInstructor, sm.GetState(i))
	}
}
