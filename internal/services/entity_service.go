package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"mainthub/internal/caching"
	"mainthub/internal/importer"
	"mainthub/internal/logging"
	"mainthub/internal/models"
	"mainthub/internal/repositories"

	"github.com/google/uuid"
)

// EntityService fronts one repository with the list cache and the import pipeline.
type EntityService[T any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Search(ctx context.Context, query string) ([]*T, error)
	Create(ctx context.Context, fields models.Fields) (*T, error)
	Update(ctx context.Context, id uuid.UUID, fields models.Fields) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Import(ctx context.Context, payload io.Reader) (*models.ImportResult, error)
	Kind() *repositories.Kind[T]
}

type entityService[T any] struct {
	repo         repositories.Repository[T]
	cacheService caching.CacheService
	archive      ImportArchive
	cacheTTL     time.Duration
}

// NewEntityService wires a repository to its cache and archive; either may be nil.
func NewEntityService[T any](repo repositories.Repository[T], cacheService caching.CacheService, archive ImportArchive, cacheTTL time.Duration) EntityService[T] {
	return &entityService[T]{
		repo:         repo,
		cacheService: cacheService,
		archive:      archive,
		cacheTTL:     cacheTTL,
	}
}

func (s *entityService[T]) Kind() *repositories.Kind[T] {
	return s.repo.Kind()
}

func (s *entityService[T]) GetAll(ctx context.Context) ([]*T, error) {
	kind := s.repo.Kind().Name
	if s.cacheService != nil {
		data, hit, err := s.cacheService.GetList(ctx, kind)
		if err != nil {
			logging.FromContext(ctx).Warn("list cache read failed", "kind", kind, "error", err)
		} else if hit {
			var cached []*T
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
			logging.FromContext(ctx).Warn("discarding unreadable list cache entry", "kind", kind)
		}
	}

	entities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		if data, err := json.Marshal(entities); err == nil {
			if cacheErr := s.cacheService.SetList(ctx, kind, data, s.cacheTTL, s.relationTables()...); cacheErr != nil {
				logging.FromContext(ctx).Warn("list cache write failed", "kind", kind, "error", cacheErr)
			}
		}
	}
	return entities, nil
}

func (s *entityService[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *entityService[T]) Search(ctx context.Context, query string) ([]*T, error) {
	return s.repo.Search(ctx, query)
}

func (s *entityService[T]) Create(ctx context.Context, fields models.Fields) (*T, error) {
	entity, err := s.repo.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return entity, nil
}

func (s *entityService[T]) Update(ctx context.Context, id uuid.UUID, fields models.Fields) (*T, error) {
	entity, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return entity, nil
}

func (s *entityService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Import archives the raw payload when an archive is configured, then runs
// the pipeline. The cache is dropped even when the import fails part way,
// since earlier rows may already be stored.
func (s *entityService[T]) Import(ctx context.Context, payload io.Reader) (*models.ImportResult, error) {
	kind := s.repo.Kind().Name
	if s.archive != nil {
		data, err := io.ReadAll(payload)
		if err != nil {
			return nil, err
		}
		if objectName, err := s.archive.Store(ctx, kind, data); err != nil {
			logging.FromContext(ctx).Warn("import archive failed", "kind", kind, "error", err)
		} else {
			logging.FromContext(ctx).Info("import archived", "kind", kind, "object", objectName)
		}
		payload = bytes.NewReader(data)
	}

	result, err := importer.NewPipeline[T](s.repo).Import(ctx, payload)
	if result != nil && result.Success > 0 {
		s.invalidate(ctx)
	}
	return result, err
}

// relationTables lists the tables embedded in this kind's list snapshot.
func (s *entityService[T]) relationTables() []string {
	var tables []string
	for _, rel := range s.repo.Kind().Relations {
		tables = append(tables, rel.Table)
	}
	return tables
}

// invalidate drops this kind's snapshot and the snapshots of kinds embedding it.
func (s *entityService[T]) invalidate(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	kind := s.repo.Kind()
	if err := s.cacheService.InvalidateKind(ctx, kind.Name, kind.Table); err != nil {
		logging.FromContext(ctx).Warn("list cache invalidation failed", "kind", kind.Name, "error", err)
	}
}
