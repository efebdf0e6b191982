package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)

	calls struct {
		GetByID []struct {
			ID int64
		}
		GetByUsername []struct {
			Username string
		}
	}
	lockGetByID       sync.RWMutex
	lockGetByUsername sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID int64 }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct{ ID int64 } {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, struct{ Username string }{Username: username})
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct{ Username string } {
	mock.lockGetByUsername.RLock()
	defer mock.lockGetByUsername.RUnlock()
	return mock.calls.GetByUsername
}

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	SaveFunc   func(ctx context.Context, s domain.Session) error
	GetFunc    func(ctx context.Context, id string) (*domain.Session, error)
	DeleteFunc func(ctx context.Context, id string) error

	calls struct {
		Save []struct {
			S domain.Session
		}
		Get []struct {
			ID string
		}
		Delete []struct {
			ID string
		}
	}
	lockSave   sync.RWMutex
	lockGet    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *sessionStoreMock) Save(ctx context.Context, s domain.Session) error {
	if mock.SaveFunc == nil {
		panic("sessionStoreMock.SaveFunc: method is nil but sessionStore.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct{ S domain.Session }{S: s})
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, s)
}

func (mock *sessionStoreMock) SaveCalls() []struct{ S domain.Session } {
	mock.lockSave.RLock()
	defer mock.lockSave.RUnlock()
	return mock.calls.Save
}

func (mock *sessionStoreMock) Get(ctx context.Context, id string) (*domain.Session, error) {
	if mock.GetFunc == nil {
		panic("sessionStoreMock.GetFunc: method is nil but sessionStore.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ ID string }{ID: id})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *sessionStoreMock) GetCalls() []struct{ ID string } {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *sessionStoreMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("sessionStoreMock.DeleteFunc: method is nil but sessionStore.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID string }{ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sessionStoreMock) DeleteCalls() []struct{ ID string } {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}
