package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ADVENTURA_BACK-END/internal/models"
)

// uniqueViolation is the Postgres error code for unique constraint breaches
const uniqueViolation = "23505"

const adventureColumns = `id, creator_id, title, description, status, summary, share_token, starts_at, created_at, updated_at`

// PostgresAdventureStore is the relational AdventureStore backend.
type PostgresAdventureStore struct {
	db *pgxpool.Pool
}

// NewPostgresAdventureStore creates a PostgresAdventureStore
func NewPostgresAdventureStore(db *pgxpool.Pool) *PostgresAdventureStore {
	return &PostgresAdventureStore{db: db}
}

// fallbackUsername mirrors the display name used when a user row is gone or
// has no username
func fallbackUsername(id uuid.UUID) string {
	return "user-" + id.String()[:6]
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func scanAdventure(row pgx.Row) (*models.Adventure, error) {
	var a models.Adventure
	err := row.Scan(
		&a.ID, &a.CreatorID, &a.Title, &a.Description, &a.Status,
		&a.Summary, &a.ShareToken, &a.StartsAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan adventure: %w", err)
	}
	return &a, nil
}

// loadParticipants returns participants grouped by adventure id, resolved
// against the users table.
func (s *PostgresAdventureStore) loadParticipants(ctx context.Context, q rowQuerier, adventureIDs []uuid.UUID) (map[uuid.UUID][]models.Participant, error) {
	grouped := make(map[uuid.UUID][]models.Participant)
	if len(adventureIDs) == 0 {
		return grouped, nil
	}

	rows, err := q.Query(ctx,
		`SELECT ap.adventure_id, ap.user_id, COALESCE(u.username, ''), u.avatar_url
		   FROM adventure_participants ap
		   LEFT JOIN users u ON u.id = ap.user_id
		  WHERE ap.adventure_id = ANY($1)
		  ORDER BY ap.joined_at ASC`, adventureIDs)
	if err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var adventureID uuid.UUID
		var p models.Participant
		if err := rows.Scan(&adventureID, &p.ID, &p.Username, &p.AvatarURL); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		if p.Username == "" {
			p.Username = fallbackUsername(p.ID)
		}
		grouped[adventureID] = append(grouped[adventureID], p)
	}
	return grouped, rows.Err()
}

// hydrate attaches participants and the creator view to a bare adventure row
func (s *PostgresAdventureStore) hydrate(ctx context.Context, q rowQuerier, a *models.Adventure) (*models.Adventure, error) {
	grouped, err := s.loadParticipants(ctx, q, []uuid.UUID{a.ID})
	if err != nil {
		return nil, err
	}
	a.Participants = grouped[a.ID]
	if a.Participants == nil {
		a.Participants = []models.Participant{}
	}

	a.Creator = models.Participant{ID: a.CreatorID, Username: fallbackUsername(a.CreatorID)}
	for _, p := range a.Participants {
		if p.ID == a.CreatorID {
			a.Creator = p
			break
		}
	}
	return a, nil
}

// CreateAdventure inserts the adventure and its participant rows in one
// transaction.
func (s *PostgresAdventureStore) CreateAdventure(ctx context.Context, adventure *models.Adventure, participants []models.Participant) (*models.Adventure, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create adventure: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO adventures (id, creator_id, title, description, status, summary, share_token, starts_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		adventure.ID, adventure.CreatorID, adventure.Title, adventure.Description,
		adventure.Status, adventure.Summary, adventure.ShareToken,
		adventure.StartsAt, adventure.CreatedAt, adventure.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert adventure: %w", err)
	}

	for _, p := range participants {
		_, err = tx.Exec(ctx,
			`INSERT INTO adventure_participants (id, adventure_id, user_id, joined_at)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (adventure_id, user_id) DO NOTHING`,
			uuid.New(), adventure.ID, p.ID, adventure.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("insert participant: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create adventure: %w", err)
	}

	return s.FindByID(ctx, adventure.ID)
}

// UpdateAdventure performs a full-row update by id
func (s *PostgresAdventureStore) UpdateAdventure(ctx context.Context, adventure *models.Adventure) (*models.Adventure, error) {
	cmd, err := s.db.Exec(ctx,
		`UPDATE adventures
		    SET title = $1, description = $2, status = $3, summary = $4, starts_at = $5, updated_at = $6
		  WHERE id = $7`,
		adventure.Title, adventure.Description, adventure.Status,
		adventure.Summary, adventure.StartsAt, adventure.UpdatedAt, adventure.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update adventure: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(ctx, adventure.ID)
}

// FindByID loads an adventure with its participant list
func (s *PostgresAdventureStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Adventure, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+adventureColumns+` FROM adventures WHERE id = $1`, id)
	a, err := scanAdventure(row)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, s.db, a)
}

// FindByShareToken loads an adventure by its share token
func (s *PostgresAdventureStore) FindByShareToken(ctx context.Context, token string) (*models.Adventure, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+adventureColumns+` FROM adventures WHERE share_token = $1`, token)
	a, err := scanAdventure(row)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, s.db, a)
}

// ListByStatus returns the adventures a user participates in, by status
func (s *PostgresAdventureStore) ListByStatus(ctx context.Context, userID uuid.UUID, status models.AdventureStatus) ([]models.Adventure, error) {
	rows, err := s.db.Query(ctx,
		`SELECT a.id, a.creator_id, a.title, a.description, a.status, a.summary, a.share_token, a.starts_at, a.created_at, a.updated_at
		   FROM adventures a
		   JOIN adventure_participants ap ON ap.adventure_id = a.id
		  WHERE ap.user_id = $1 AND a.status = $2
		  ORDER BY a.created_at DESC`, userID, status)
	if err != nil {
		return nil, fmt.Errorf("query adventures by status: %w", err)
	}
	defer rows.Close()

	bases := make([]models.Adventure, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var a models.Adventure
		if err := rows.Scan(
			&a.ID, &a.CreatorID, &a.Title, &a.Description, &a.Status,
			&a.Summary, &a.ShareToken, &a.StartsAt, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan adventure: %w", err)
		}
		bases = append(bases, a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	grouped, err := s.loadParticipants(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}

	items := make([]models.Adventure, 0, len(bases))
	for _, a := range bases {
		a.Participants = grouped[a.ID]
		if a.Participants == nil {
			a.Participants = []models.Participant{}
		}
		a.Creator = models.Participant{ID: a.CreatorID, Username: fallbackUsername(a.CreatorID)}
		for _, p := range a.Participants {
			if p.ID == a.CreatorID {
				a.Creator = p
				break
			}
		}
		items = append(items, a)
	}
	return items, nil
}

// ListParticipants returns the resolved participant list
func (s *PostgresAdventureStore) ListParticipants(ctx context.Context, adventureID uuid.UUID) ([]models.Participant, error) {
	if err := s.ensureAdventure(ctx, adventureID); err != nil {
		return nil, err
	}
	grouped, err := s.loadParticipants(ctx, s.db, []uuid.UUID{adventureID})
	if err != nil {
		return nil, err
	}
	list := grouped[adventureID]
	if list == nil {
		list = []models.Participant{}
	}
	return list, nil
}

// AddParticipant appends a member; re-adding is a no-op
func (s *PostgresAdventureStore) AddParticipant(ctx context.Context, adventureID uuid.UUID, participant models.Participant) (*models.Adventure, error) {
	if err := s.ensureAdventure(ctx, adventureID); err != nil {
		return nil, err
	}

	cmd, err := s.db.Exec(ctx,
		`INSERT INTO adventure_participants (id, adventure_id, user_id, joined_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (adventure_id, user_id) DO NOTHING`,
		uuid.New(), adventureID, participant.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert participant: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		if _, err := s.db.Exec(ctx,
			`UPDATE adventures SET updated_at = NOW() WHERE id = $1`, adventureID); err != nil {
			return nil, fmt.Errorf("bump adventure updated_at: %w", err)
		}
	}

	return s.FindByID(ctx, adventureID)
}

// CreatePhoto inserts a photo for an existing adventure
func (s *PostgresAdventureStore) CreatePhoto(ctx context.Context, photo *models.AdventurePhoto) (*models.AdventurePhoto, error) {
	if err := s.ensureAdventure(ctx, photo.AdventureID); err != nil {
		return nil, err
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO adventure_photos (id, adventure_id, uploader_id, url, caption, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		photo.ID, photo.AdventureID, photo.Uploader.ID, photo.URL, photo.Caption, photo.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert photo: %w", err)
	}

	out := *photo
	var username *string
	err = s.db.QueryRow(ctx, `SELECT username FROM users WHERE id = $1`, photo.Uploader.ID).Scan(&username)
	if err == nil && username != nil && *username != "" {
		out.Uploader.Username = *username
	} else if out.Uploader.Username == "" {
		out.Uploader.Username = fallbackUsername(out.Uploader.ID)
	}
	return &out, nil
}

// ListPhotos returns the photos of an adventure; ErrNotFound when the
// adventure itself is missing
func (s *PostgresAdventureStore) ListPhotos(ctx context.Context, adventureID uuid.UUID) ([]models.AdventurePhoto, error) {
	if err := s.ensureAdventure(ctx, adventureID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT p.id, p.adventure_id, p.uploader_id, p.url, p.caption, p.created_at, COALESCE(u.username, ''), u.avatar_url
		   FROM adventure_photos p
		   LEFT JOIN users u ON u.id = p.uploader_id
		  WHERE p.adventure_id = $1
		  ORDER BY p.created_at ASC`, adventureID)
	if err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}
	defer rows.Close()

	items := make([]models.AdventurePhoto, 0)
	for rows.Next() {
		var p models.AdventurePhoto
		if err := rows.Scan(&p.ID, &p.AdventureID, &p.Uploader.ID, &p.URL, &p.Caption, &p.CreatedAt, &p.Uploader.Username, &p.Uploader.AvatarURL); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		if p.Uploader.Username == "" {
			p.Uploader.Username = fallbackUsername(p.Uploader.ID)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// DeletePhoto removes a photo; true iff a row existed
func (s *PostgresAdventureStore) DeletePhoto(ctx context.Context, adventureID, photoID uuid.UUID) (bool, error) {
	cmd, err := s.db.Exec(ctx,
		`DELETE FROM adventure_photos WHERE id = $1 AND adventure_id = $2`,
		photoID, adventureID)
	if err != nil {
		return false, fmt.Errorf("delete photo: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AddReaction replaces the user's previous reaction in one transaction
func (s *PostgresAdventureStore) AddReaction(ctx context.Context, reaction *models.AdventureReaction) (*models.AdventureReaction, error) {
	if err := s.ensureAdventure(ctx, reaction.AdventureID); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin add reaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM adventure_reactions WHERE adventure_id = $1 AND user_id = $2`,
		reaction.AdventureID, reaction.UserID)
	if err != nil {
		return nil, fmt.Errorf("clear previous reaction: %w", err)
	}

	stored := *reaction
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO adventure_reactions (id, adventure_id, user_id, emoji, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		stored.ID, stored.AdventureID, stored.UserID, stored.Emoji, stored.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert reaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit add reaction: %w", err)
	}
	return &stored, nil
}

// RemoveReaction deletes the user's reaction with the given emoji
func (s *PostgresAdventureStore) RemoveReaction(ctx context.Context, adventureID, userID uuid.UUID, emoji string) (bool, error) {
	cmd, err := s.db.Exec(ctx,
		`DELETE FROM adventure_reactions WHERE adventure_id = $1 AND user_id = $2 AND emoji = $3`,
		adventureID, userID, emoji)
	if err != nil {
		return false, fmt.Errorf("delete reaction: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListReactions returns the reactions of an adventure
func (s *PostgresAdventureStore) ListReactions(ctx context.Context, adventureID uuid.UUID) ([]models.AdventureReaction, error) {
	if err := s.ensureAdventure(ctx, adventureID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, adventure_id, user_id, emoji, created_at
		   FROM adventure_reactions
		  WHERE adventure_id = $1
		  ORDER BY created_at ASC`, adventureID)
	if err != nil {
		return nil, fmt.Errorf("query reactions: %w", err)
	}
	defer rows.Close()

	items := make([]models.AdventureReaction, 0)
	for rows.Next() {
		var r models.AdventureReaction
		if err := rows.Scan(&r.ID, &r.AdventureID, &r.UserID, &r.Emoji, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reaction: %w", err)
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

func (s *PostgresAdventureStore) ensureAdventure(ctx context.Context, id uuid.UUID) error {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM adventures WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check adventure exists: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

// PostgresUserStore resolves users against the users table.
type PostgresUserStore struct {
	db *pgxpool.Pool
}

// NewPostgresUserStore creates a PostgresUserStore
func NewPostgresUserStore(db *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

// FindByID loads a user by id
func (s *PostgresUserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(ctx,
		`SELECT id, username, COALESCE(email, ''), avatar_url, created_at FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.AvatarURL, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

// PostgresFriendStore lists connections from the planner_friends table.
type PostgresFriendStore struct {
	db *pgxpool.Pool
}

// NewPostgresFriendStore creates a PostgresFriendStore
func NewPostgresFriendStore(db *pgxpool.Pool) *PostgresFriendStore {
	return &PostgresFriendStore{db: db}
}

// ListByUser returns all friends connected to the user
func (s *PostgresFriendStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Friend, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, name, avatar_url, connected_at FROM planner_friends WHERE user_id = $1 ORDER BY connected_at ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("query friends: %w", err)
	}
	defer rows.Close()

	items := make([]models.Friend, 0)
	for rows.Next() {
		var f models.Friend
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.AvatarURL, &f.ConnectedAt); err != nil {
			return nil, fmt.Errorf("scan friend: %w", err)
		}
		items = append(items, f)
	}
	return items, rows.Err()
}
