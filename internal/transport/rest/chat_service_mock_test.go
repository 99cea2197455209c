package rest

import (
	"context"
	"sync"

	chatsvc "github.com/heartmarshall/dialects-backend/internal/service/chat"
)

var _ chatService = &chatServiceMock{}

type chatServiceMock struct {
	ChatFunc func(ctx context.Context, input chatsvc.ChatInput) (*chatsvc.ChatResult, error)

	calls struct {
		Chat []struct {
			Ctx   context.Context
			Input chatsvc.ChatInput
		}
	}
	lockChat sync.RWMutex
}

func (mock *chatServiceMock) Chat(ctx context.Context, input chatsvc.ChatInput) (*chatsvc.ChatResult, error) {
	if mock.ChatFunc == nil {
		panic("chatServiceMock.ChatFunc: method is nil but chatService.Chat was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input chatsvc.ChatInput
	}{Ctx: ctx, Input: input}
	mock.lockChat.Lock()
	mock.calls.Chat = append(mock.calls.Chat, callInfo)
	mock.lockChat.Unlock()
	return mock.ChatFunc(ctx, input)
}

func (mock *chatServiceMock) ChatCalls() []struct {
	Ctx   context.Context
	Input chatsvc.ChatInput
} {
	mock.lockChat.RLock()
	calls := mock.calls.Chat
	mock.lockChat.RUnlock()
	return calls
}
