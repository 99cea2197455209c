package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/dialects-backend/internal/domain"
	termsvc "github.com/heartmarshall/dialects-backend/internal/service/term"
)

var _ termService = &termServiceMock{}

type termServiceMock struct {
	ListTermsFunc  func(ctx context.Context) ([]domain.Term, error)
	AddTermFunc    func(ctx context.Context, input termsvc.AddTermInput) (*domain.Term, error)
	DeleteTermFunc func(ctx context.Context, input termsvc.DeleteTermInput) error

	calls struct {
		ListTerms []struct {
			Ctx context.Context
		}
		AddTerm []struct {
			Ctx   context.Context
			Input termsvc.AddTermInput
		}
		DeleteTerm []struct {
			Ctx   context.Context
			Input termsvc.DeleteTermInput
		}
	}
	lockListTerms  sync.RWMutex
	lockAddTerm    sync.RWMutex
	lockDeleteTerm sync.RWMutex
}

func (mock *termServiceMock) ListTerms(ctx context.Context) ([]domain.Term, error) {
	if mock.ListTermsFunc == nil {
		panic("termServiceMock.ListTermsFunc: method is nil but termService.ListTerms was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTerms.Lock()
	mock.calls.ListTerms = append(mock.calls.ListTerms, callInfo)
	mock.lockListTerms.Unlock()
	return mock.ListTermsFunc(ctx)
}

func (mock *termServiceMock) ListTermsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTerms.RLock()
	calls := mock.calls.ListTerms
	mock.lockListTerms.RUnlock()
	return calls
}

func (mock *termServiceMock) AddTerm(ctx context.Context, input termsvc.AddTermInput) (*domain.Term, error) {
	if mock.AddTermFunc == nil {
		panic("termServiceMock.AddTermFunc: method is nil but termService.AddTerm was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input termsvc.AddTermInput
	}{Ctx: ctx, Input: input}
	mock.lockAddTerm.Lock()
	mock.calls.AddTerm = append(mock.calls.AddTerm, callInfo)
	mock.lockAddTerm.Unlock()
	return mock.AddTermFunc(ctx, input)
}

func (mock *termServiceMock) AddTermCalls() []struct {
	Ctx   context.Context
	Input termsvc.AddTermInput
} {
	mock.lockAddTerm.RLock()
	calls := mock.calls.AddTerm
	mock.lockAddTerm.RUnlock()
	return calls
}

func (mock *termServiceMock) DeleteTerm(ctx context.Context, input termsvc.DeleteTermInput) error {
	if mock.DeleteTermFunc == nil {
		panic("termServiceMock.DeleteTermFunc: method is nil but termService.DeleteTerm was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input termsvc.DeleteTermInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteTerm.Lock()
	mock.calls.DeleteTerm = append(mock.calls.DeleteTerm, callInfo)
	mock.lockDeleteTerm.Unlock()
	return mock.DeleteTermFunc(ctx, input)
}

func (mock *termServiceMock) DeleteTermCalls() []struct {
	Ctx   context.Context
	Input termsvc.DeleteTermInput
} {
	mock.lockDeleteTerm.RLock()
	calls := mock.calls.DeleteTerm
	mock.lockDeleteTerm.RUnlock()
	return calls
}
