package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"portfolio-cms-backend/internal/query"
	"portfolio-cms-backend/internal/types"
)

// Crud implements the uniform persistence contract every resource service
// shares: paginated scoped listing, scoped lookup, create, ownership-checked
// update/delete and scoped bulk delete. Concrete services embed it and add
// entity-specific operations on top.
type Crud[T any] struct {
	db       *gorm.DB
	log      *zap.Logger
	name     string
	scopeCol string            // owning foreign key column; "" means unscoped
	columns  map[string]string // request keys allowed in filters and sorts
	preloads []string
}

func newCrud[T any](db *gorm.DB, log *zap.Logger, name, scopeCol string, columns map[string]string, preloads ...string) Crud[T] {
	return Crud[T]{
		db:       db,
		log:      log,
		name:     name,
		scopeCol: scopeCol,
		columns:  columns,
		preloads: preloads,
	}
}

func (s *Crud[T]) scoped(db *gorm.DB, scopeID uuid.UUID) *gorm.DB {
	if s.scopeCol != "" {
		db = db.Where(s.scopeCol+" = ?", scopeID)
	}
	return db
}

func (s *Crud[T]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, p := range s.preloads {
		db = db.Preload(p)
	}
	return db
}

// GetAll runs the count and list queries concurrently; both see the same
// filter set and scope. The two reads are not transactional with each other.
func (s *Crud[T]) GetAll(ctx context.Context, q types.ListQuery, scopeID uuid.UUID) (*types.Page[T], error) {
	opts := query.Build(q, s.columns)

	var (
		rows  []T
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		db := s.scoped(s.db.WithContext(gctx).Model(new(T)), scopeID)
		return opts.Listed(s.withPreloads(db)).Find(&rows).Error
	})
	g.Go(func() error {
		db := s.scoped(s.db.WithContext(gctx).Model(new(T)), scopeID)
		return opts.Filtered(db).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}

	s.log.Info("fetched records",
		zap.String("entity", s.name),
		zap.Int64("total", total),
		zap.Int("page", opts.Page))
	return &types.Page[T]{Page: opts.Page, Limit: opts.Limit, Total: total, Data: rows}, nil
}

// GetByID returns nil (not an error) when no row matches; a row outside the
// caller's scope looks exactly like a missing one.
func (s *Crud[T]) GetByID(ctx context.Context, id, scopeID uuid.UUID) (*T, error) {
	var row T
	db := s.scoped(s.db.WithContext(ctx), scopeID).Where("id = ?", id)
	if err := s.withPreloads(db).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	s.log.Info("fetched record", zap.String("entity", s.name), zap.String("id", id.String()))
	return &row, nil
}

func (s *Crud[T]) Create(ctx context.Context, row *T) (*T, error) {
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("already in table, please try another value")
		}
		return nil, err
	}
	s.log.Info("created record", zap.String("entity", s.name))
	return row, nil
}

// Update re-fetches the target within the caller's scope before mutating.
// A miss is an authorization failure for scoped entities, whether the row is
// missing or simply not theirs.
func (s *Crud[T]) Update(ctx context.Context, id, scopeID uuid.UUID, updates map[string]any) (*T, error) {
	var row T
	err := s.scoped(s.db.WithContext(ctx), scopeID).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.missErr("update")
		}
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&row).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, conflict("already in table, please try another value")
			}
			return nil, err
		}
	}

	s.log.Info("updated record", zap.String("entity", s.name), zap.String("id", id.String()))
	return s.GetByID(ctx, id, scopeID)
}

// Delete runs the same ownership pre-check as Update and returns the row's
// prior state.
func (s *Crud[T]) Delete(ctx context.Context, id, scopeID uuid.UUID) (*T, error) {
	var row T
	err := s.scoped(s.db.WithContext(ctx), scopeID).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.missErr("delete")
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Delete(&row).Error; err != nil {
		return nil, err
	}
	s.log.Info("deleted record", zap.String("entity", s.name), zap.String("id", id.String()))
	return &row, nil
}

// DeleteBulk removes every listed id within scope and reports how many rows
// actually went away; ids outside the scope are skipped silently.
func (s *Crud[T]) DeleteBulk(ctx context.Context, ids []uuid.UUID, scopeID uuid.UUID) (int64, error) {
	res := s.scoped(s.db.WithContext(ctx), scopeID).Where("id IN ?", ids).Delete(new(T))
	if res.Error != nil {
		return 0, res.Error
	}
	s.log.Info("bulk deleted records",
		zap.String("entity", s.name),
		zap.Int("requested", len(ids)),
		zap.Int64("deleted", res.RowsAffected))
	return res.RowsAffected, nil
}

func (s *Crud[T]) missErr(op string) error {
	if s.scopeCol == "" {
		return notFound("record not found")
	}
	return unauthorized("you are not authorized to " + op + " this record")
}
