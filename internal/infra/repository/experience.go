package repository

import (
	"context"

	"bookit/internal/infra"
	"bookit/internal/infra/db"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExperienceRepository struct {
	db db.DBTX
}

func NewExperienceRepository(dbtx db.DBTX) *ExperienceRepository {
	return &ExperienceRepository{db: dbtx}
}

const findExperienceByID = `
SELECT id, title, price, max_participants
FROM experiences
WHERE id = $1
`

func (r *ExperienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ExperienceSnapshot, error) {
	var snap shared.ExperienceSnapshot
	err := r.db.QueryRow(ctx, findExperienceByID, id).Scan(
		&snap.ID,
		&snap.Title,
		&snap.Price,
		&snap.MaxParticipants,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("experience not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find experience by ID", err)
	}

	return &snap, nil
}
