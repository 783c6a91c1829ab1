package projectIdentity

import (
	"context"
	"errors"
	"sync"

	"cloud.google.com/go/compute/metadata"
	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

var ErrNotResolved = errors.New("project id could not be resolved from configuration, credentials or metadata server")

// Source returns a project ID, or "" when it has none to offer.
type Source func(ctx context.Context) (string, error)

// Resolver resolves the project ID on first use and returns the cached value afterwards.
type Resolver struct {
	sources []Source

	once sync.Once
	id   string
	err  error
}

func NewResolver(explicit string) *Resolver {
	return NewResolverWithSources(Static(explicit), FromDefaultCredentials, FromMetadata)
}

func NewResolverWithSources(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

func (r *Resolver) ProjectID(ctx context.Context) (string, error) {
	r.once.Do(func() {
		r.id, r.err = r.resolve(ctx)
	})
	return r.id, r.err
}

func (r *Resolver) resolve(ctx context.Context) (string, error) {
	for _, source := range r.sources {
		id, err := source(ctx)
		if err != nil {
			zap.L().Debug("project id source failed", zap.Error(err))
			continue
		}
		if id != "" {
			return id, nil
		}
	}
	return "", ErrNotResolved
}

func Static(id string) Source {
	return func(context.Context) (string, error) {
		return id, nil
	}
}

func FromDefaultCredentials(ctx context.Context) (string, error) {
	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return "", err
	}
	return creds.ProjectID, nil
}

func FromMetadata(context.Context) (string, error) {
	if !metadata.OnGCE() {
		return "", nil
	}
	return metadata.ProjectID()
}
