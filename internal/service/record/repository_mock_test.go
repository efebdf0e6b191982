package record

import (
	"context"
	"sync"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

var _ Repository[domain.Task] = &repositoryMock[domain.Task]{}

type repositoryMock[E any] struct {
	ListFunc    func(ctx context.Context, ownerID int64) ([]*E, error)
	GetByIDFunc func(ctx context.Context, id int64) (*E, error)
	CreateFunc  func(ctx context.Context, e E) (*E, error)
	UpdateFunc  func(ctx context.Context, id int64, p domain.Patch) (*E, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	calls struct {
		List []struct {
			OwnerID int64
		}
		GetByID []struct {
			ID int64
		}
		Create []struct {
			E E
		}
		Update []struct {
			ID int64
			P  domain.Patch
		}
		Delete []struct {
			ID int64
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *repositoryMock[E]) List(ctx context.Context, ownerID int64) ([]*E, error) {
	if mock.ListFunc == nil {
		panic("repositoryMock.ListFunc: method is nil but Repository.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ OwnerID int64 }{OwnerID: ownerID})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID)
}

func (mock *repositoryMock[E]) ListCalls() []struct{ OwnerID int64 } {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *repositoryMock[E]) GetByID(ctx context.Context, id int64) (*E, error) {
	if mock.GetByIDFunc == nil {
		panic("repositoryMock.GetByIDFunc: method is nil but Repository.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID int64 }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *repositoryMock[E]) GetByIDCalls() []struct{ ID int64 } {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *repositoryMock[E]) Create(ctx context.Context, e E) (*E, error) {
	if mock.CreateFunc == nil {
		panic("repositoryMock.CreateFunc: method is nil but Repository.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ E E }{E: e})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *repositoryMock[E]) CreateCalls() []struct{ E E } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *repositoryMock[E]) Update(ctx context.Context, id int64, p domain.Patch) (*E, error) {
	if mock.UpdateFunc == nil {
		panic("repositoryMock.UpdateFunc: method is nil but Repository.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID int64
		P  domain.Patch
	}{ID: id, P: p})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *repositoryMock[E]) UpdateCalls() []struct {
	ID int64
	P  domain.Patch
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *repositoryMock[E]) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("repositoryMock.DeleteFunc: method is nil but Repository.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID int64 }{ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *repositoryMock[E]) DeleteCalls() []struct{ ID int64 } {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}
