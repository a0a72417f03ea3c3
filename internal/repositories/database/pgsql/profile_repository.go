package pgsql

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool *pgxpool.Pool) *PgxProfileRepository {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

const profileColumns = `id, email, full_name, company_name, created_at, updated_at`

func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, userID string) (*domain.Profile, error) {
	row, err := queryOne[models.Profile](ctx, r.Pool,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, "profile", userID)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainProfile(*row)
	return &p, nil
}

// UpsertProfile keeps a previously stored email when the token carries none.
func (r *PgxProfileRepository) UpsertProfile(ctx context.Context, userID string, email *string, in domain.ProfileDetails) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (id, email, full_name, company_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			email = COALESCE(EXCLUDED.email, profiles.email),
			full_name = EXCLUDED.full_name,
			company_name = EXCLUDED.company_name,
			updated_at = NOW()
		RETURNING ` + profileColumns
	row, err := queryOne[models.Profile](ctx, r.Pool, query, "profile", userID, email, in.FullName, in.CompanyName)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainProfile(*row)
	return &p, nil
}
