package chat

import (
	"context"
	"sync"
)

var _ completionGateway = &completionGatewayMock{}

type completionGatewayMock struct {
	CompleteFunc func(ctx context.Context, provider string, message string) (string, error)

	calls struct {
		Complete []struct {
			Ctx      context.Context
			Provider string
			Message  string
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completionGatewayMock) Complete(ctx context.Context, provider string, message string) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completionGatewayMock.CompleteFunc: method is nil but completionGateway.Complete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Provider string
		Message  string
	}{Ctx: ctx, Provider: provider, Message: message}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, provider, message)
}

func (mock *completionGatewayMock) CompleteCalls() []struct {
	Ctx      context.Context
	Provider string
	Message  string
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
