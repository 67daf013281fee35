package credential

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

type store interface {
	Get(ctx context.Context) (string, error)
}

// Source says where a resolved credential came from.
type Source string

const (
	SourceNone   Source = "none"
	SourceConfig Source = "config"
	SourceStore  Source = "store"
)

// Resolver picks the credential for translation calls: a key from the
// configuration wins over the stored one.
type Resolver struct {
	configured string
	store      store
}

// NewResolver creates a Resolver. Either argument may be empty.
func NewResolver(configured string, s store) *Resolver {
	return &Resolver{configured: configured, store: s}
}

// Credential returns the active credential.
// Returns domain.ErrNotFound when neither source has one.
func (r *Resolver) Credential(ctx context.Context) (string, error) {
	key, _, err := r.resolve(ctx)
	return key, err
}

// Status describes the active credential without revealing it.
type Status struct {
	Configured bool
	Source     Source
	Masked     string
}

// Status reports which credential would be used.
func (r *Resolver) Status(ctx context.Context) (Status, error) {
	key, src, err := r.resolve(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return Status{Source: SourceNone}, nil
	}
	if err != nil {
		return Status{}, err
	}
	return Status{Configured: true, Source: src, Masked: Mask(key)}, nil
}

func (r *Resolver) resolve(ctx context.Context) (string, Source, error) {
	if r.configured != "" {
		return r.configured, SourceConfig, nil
	}
	if r.store == nil {
		return "", SourceNone, fmt.Errorf("credential: %w", domain.ErrNotFound)
	}
	key, err := r.store.Get(ctx)
	if err != nil {
		return "", SourceNone, err
	}
	return key, SourceStore, nil
}

// Mask keeps the first and last four characters of key.
func Mask(key string) string {
	r := []rune(key)
	if len(r) <= 8 {
		return "********"
	}
	return string(r[:4]) + "…" + string(r[len(r)-4:])
}
