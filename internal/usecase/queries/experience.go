package queries

import (
	"context"
	"time"

	"bookit/internal/infra"
	"bookit/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrExperienceNotFound = errs.New("experience not found")
	ErrInvalidDateFilter  = errs.New("invalid date filter")
)

type ExperienceQueries interface {
	List(ctx context.Context) ([]*ExperienceView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ExperienceDetailView, error)
	ListSlots(ctx context.Context, experienceID uuid.UUID, date *string) ([]*SlotView, error)
}

type ExperienceReadStore interface {
	FindAll(ctx context.Context) ([]*ExperienceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ExperienceView, error)
	FindSlots(ctx context.Context, experienceID uuid.UUID, date *string) ([]*SlotView, error)
}

type experienceQueriesImpl struct {
	store ExperienceReadStore
}

func NewExperienceQueries(store ExperienceReadStore) ExperienceQueries {
	return &experienceQueriesImpl{store: store}
}

func (q *experienceQueriesImpl) List(ctx context.Context) ([]*ExperienceView, error) {
	return q.store.FindAll(ctx)
}

func (q *experienceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ExperienceDetailView, error) {
	exp, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}

	slots, err := q.store.FindSlots(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	return &ExperienceDetailView{
		ExperienceView: *exp,
		Slots:          slots,
	}, nil
}

func (q *experienceQueriesImpl) ListSlots(ctx context.Context, experienceID uuid.UUID, date *string) ([]*SlotView, error) {
	if date != nil {
		if _, err := time.Parse(SlotDateFormat, *date); err != nil {
			return nil, errs.Mark(err, ErrInvalidDateFilter)
		}
	}
	return q.store.FindSlots(ctx, experienceID, date)
}
