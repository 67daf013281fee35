package translate

import (
	"context"
	"sync"
)

var _ completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, credential string, prompt string) (string, error)

	calls struct {
		Complete []struct {
			Ctx        context.Context
			Credential string
			Prompt     string
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, credential string, prompt string) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Credential string
		Prompt     string
	}{Ctx: ctx, Credential: credential, Prompt: prompt}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, credential, prompt)
}

func (mock *completerMock) CompleteCalls() []struct {
	Ctx        context.Context
	Credential string
	Prompt     string
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

var _ credentialSource = &credentialSourceMock{}

type credentialSourceMock struct {
	CredentialFunc func(ctx context.Context) (string, error)

	calls struct {
		Credential []struct {
			Ctx context.Context
		}
	}
	lockCredential sync.RWMutex
}

func (mock *credentialSourceMock) Credential(ctx context.Context) (string, error) {
	if mock.CredentialFunc == nil {
		panic("credentialSourceMock.CredentialFunc: method is nil but credentialSource.Credential was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCredential.Lock()
	mock.calls.Credential = append(mock.calls.Credential, callInfo)
	mock.lockCredential.Unlock()
	return mock.CredentialFunc(ctx)
}

func (mock *credentialSourceMock) CredentialCalls() []struct {
	Ctx context.Context
} {
	mock.lockCredential.RLock()
	calls := mock.calls.Credential
	mock.lockCredential.RUnlock()
	return calls
}
