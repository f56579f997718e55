package readstore

import (
	"context"

	"bookit/internal/infra"
	"bookit/internal/infra/db"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ExperienceReadStore struct {
	db db.DBTX
}

func NewExperienceReadStore(dbtx db.DBTX) *ExperienceReadStore {
	return &ExperienceReadStore{db: dbtx}
}

const findAllExperiences = `
SELECT id, title, description, location, price, duration, max_participants, image_url, created_at, updated_at
FROM experiences
ORDER BY created_at DESC
`

func (r *ExperienceReadStore) FindAll(ctx context.Context) ([]*queries.ExperienceView, error) {
	rows, err := r.db.Query(ctx, findAllExperiences)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list experiences", err)
	}
	defer rows.Close()

	var result []*queries.ExperienceView
	for rows.Next() {
		view, err := scanExperienceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan experience row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate experience rows", err)
	}

	return result, nil
}

const findExperienceViewByID = `
SELECT id, title, description, location, price, duration, max_participants, image_url, created_at, updated_at
FROM experiences
WHERE id = $1
`

func (r *ExperienceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ExperienceView, error) {
	row := r.db.QueryRow(ctx, findExperienceViewByID, id)

	view, err := scanExperienceView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("experience not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find experience by ID", err)
	}

	return view, nil
}

const findSlotsBase = `
SELECT id, experience_id, date, time_slot, available_seats, booked_seats
FROM slots
WHERE experience_id = $1
`

func (r *ExperienceReadStore) FindSlots(ctx context.Context, experienceID uuid.UUID, date *string) ([]*queries.SlotView, error) {
	sql := findSlotsBase
	args := []any{experienceID}
	if date != nil {
		sql += " AND date = $2::date"
		args = append(args, *date)
	}
	sql += " ORDER BY date ASC, time_slot ASC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	var result []*queries.SlotView
	for rows.Next() {
		var (
			view     queries.SlotView
			slotDate pgtype.Date
		)
		if err := rows.Scan(
			&view.ID,
			&view.ExperienceID,
			&slotDate,
			&view.TimeSlot,
			&view.AvailableSeats,
			&view.BookedSeats,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		view.Date = pgconv.DateFromPgtype(slotDate).Format(queries.SlotDateFormat)
		view.RemainingSeats = view.AvailableSeats - view.BookedSeats
		view.IsAvailable = view.BookedSeats < view.AvailableSeats
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExperienceView(row rowScanner) (*queries.ExperienceView, error) {
	var (
		view      queries.ExperienceView
		imageURL  pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID,
		&view.Title,
		&view.Description,
		&view.Location,
		&view.Price,
		&view.Duration,
		&view.MaxParticipants,
		&imageURL,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	view.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
