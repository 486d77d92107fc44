package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"pereval/internal/models"
)

type PerevalRepository interface {
	// WithTx выполняет fn в одной транзакции: commit при nil, rollback при ошибке.
	WithTx(ctx context.Context, fn func(repo PerevalRepository) error) error

	AddUser(ctx context.Context, user *models.User) (int64, error)
	AddCoords(ctx context.Context, coords *models.Coords) (int64, error)
	AddPereval(ctx context.Context, p *models.Pereval, userID, coordID int64) (int64, error)
	AddImage(ctx context.Context, perevalID int64, data []byte, title *string) error

	GetPerevalByID(ctx context.Context, id int64) (*models.Pereval, error)
	GetPerevalsByUserEmail(ctx context.Context, email string) ([]models.PerevalSummary, error)
	GetPerevalStatus(ctx context.Context, id int64) (models.Status, error)
	LockPerevalStatus(ctx context.Context, id int64) (models.Status, error)

	UpdatePereval(ctx context.Context, id int64, p *models.Pereval) error
	ReplaceImages(ctx context.Context, perevalID int64, images []models.Image) error
}

type perevalRepository struct {
	db *sqlx.DB         // nil внутри транзакции
	q  sqlx.ExtContext // *sqlx.DB или *sqlx.Tx
}

func NewPerevalRepository(db *sqlx.DB) PerevalRepository {
	return &perevalRepository{db: db, q: db}
}

func (r *perevalRepository) WithTx(ctx context.Context, fn func(repo PerevalRepository) error) (err error) {
	if r.db == nil {
		// уже в транзакции, вложенные не открываем
		return fn(r)
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit tx: %w", cerr)
		}
	}()
	return fn(&perevalRepository{q: tx})
}

// AddUser возвращает id пользователя с данным email, создавая его при необходимости.
// Остальные поля существующего пользователя не перезаписываются.
func (r *perevalRepository) AddUser(ctx context.Context, user *models.User) (int64, error) {
	const q = `
		INSERT INTO users (email, fam, name, otc, phone)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id
	`
	var id int64
	if err := r.q.QueryRowxContext(ctx, q, user.Email, user.Fam, user.Name, user.Otc, user.Phone).Scan(&id); err != nil {
		if SQLState(err) == sqlStateNoConflictTarget {
			return 0, fmt.Errorf("add user: users.email has no unique index, see schema/schema.sql: %w", err)
		}
		return 0, fmt.Errorf("add user: %w", err)
	}
	return id, nil
}

func (r *perevalRepository) AddCoords(ctx context.Context, coords *models.Coords) (int64, error) {
	const q = `
		INSERT INTO coords (latitude, longitude, height)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := r.q.QueryRowxContext(ctx, q, coords.Latitude, coords.Longitude, coords.Height).Scan(&id); err != nil {
		return 0, fmt.Errorf("add coords: %w", err)
	}
	return id, nil
}

func (r *perevalRepository) AddPereval(ctx context.Context, p *models.Pereval, userID, coordID int64) (int64, error) {
	const q = `
		INSERT INTO pereval_added (
			beauty_title, title, other_titles, connect,
			user_id, coord_id,
			level_winter, level_summer, level_autumn, level_spring,
			status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'new')
		RETURNING id
	`
	var id int64
	err := r.q.QueryRowxContext(ctx, q,
		p.BeautyTitle, p.Title, p.OtherTitles, p.Connect,
		userID, coordID,
		p.Level.Winter, p.Level.Summer, p.Level.Autumn, p.Level.Spring,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("add pereval: %w", err)
	}
	return id, nil
}

func (r *perevalRepository) AddImage(ctx context.Context, perevalID int64, data []byte, title *string) error {
	const q = `
		INSERT INTO pereval_images (pereval_id, image_data, title)
		VALUES ($1, $2, $3)
	`
	if _, err := r.q.ExecContext(ctx, q, perevalID, data, title); err != nil {
		return fmt.Errorf("add image: %w", err)
	}
	return nil
}

type perevalRow struct {
	ID          int64     `db:"id"`
	BeautyTitle *string   `db:"beauty_title"`
	Title       string    `db:"title"`
	OtherTitles *string   `db:"other_titles"`
	Connect     *string   `db:"connect"`
	AddTime     time.Time `db:"add_time"`
	Status      string    `db:"status"`

	Email string  `db:"email"`
	Fam   string  `db:"fam"`
	Name  string  `db:"name"`
	Otc   *string `db:"otc"`
	Phone string  `db:"phone"`

	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
	Height    int     `db:"height"`

	LevelWinter *string `db:"level_winter"`
	LevelSummer *string `db:"level_summer"`
	LevelAutumn *string `db:"level_autumn"`
	LevelSpring *string `db:"level_spring"`
}

func (row *perevalRow) toModel() *models.Pereval {
	return &models.Pereval{
		ID:          row.ID,
		BeautyTitle: row.BeautyTitle,
		Title:       row.Title,
		OtherTitles: row.OtherTitles,
		Connect:     row.Connect,
		AddTime:     row.AddTime,
		Status:      models.Status(row.Status),
		User: models.User{
			Email: row.Email,
			Fam:   row.Fam,
			Name:  row.Name,
			Otc:   row.Otc,
			Phone: row.Phone,
		},
		Coords: models.Coords{
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			Height:    row.Height,
		},
		Level: models.Level{
			Winter: row.LevelWinter,
			Summer: row.LevelSummer,
			Autumn: row.LevelAutumn,
			Spring: row.LevelSpring,
		},
	}
}

// GetPerevalByID возвращает ErrNotFound, если записи нет.
func (r *perevalRepository) GetPerevalByID(ctx context.Context, id int64) (*models.Pereval, error) {
	const q = `
		SELECT
			p.id, p.beauty_title, p.title, p.other_titles, p.connect, p.add_time, p.status,
			u.email, u.fam, u.name, u.otc, u.phone,
			c.latitude, c.longitude, c.height,
			p.level_winter, p.level_summer, p.level_autumn, p.level_spring
		FROM pereval_added p
		JOIN users u ON p.user_id = u.id
		JOIN coords c ON p.coord_id = c.id
		WHERE p.id = $1
	`
	var row perevalRow
	if err := sqlx.GetContext(ctx, r.q, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get pereval: %w", err)
	}
	p := row.toModel()

	const qImages = `
		SELECT id, title, image_data
		FROM pereval_images
		WHERE pereval_id = $1
		ORDER BY id
	`
	images := []models.Image{}
	if err := sqlx.SelectContext(ctx, r.q, &images, qImages, id); err != nil {
		return nil, fmt.Errorf("get pereval images: %w", err)
	}
	p.Images = images
	return p, nil
}

func (r *perevalRepository) GetPerevalsByUserEmail(ctx context.Context, email string) ([]models.PerevalSummary, error) {
	const q = `
		SELECT p.id, p.title, p.add_time, p.status
		FROM pereval_added p
		JOIN users u ON p.user_id = u.id
		WHERE u.email = $1
		ORDER BY p.add_time
	`
	res := []models.PerevalSummary{}
	if err := sqlx.SelectContext(ctx, r.q, &res, q, email); err != nil {
		return nil, fmt.Errorf("list perevals by email: %w", err)
	}
	return res, nil
}

func (r *perevalRepository) GetPerevalStatus(ctx context.Context, id int64) (models.Status, error) {
	return r.status(ctx, `SELECT status FROM pereval_added WHERE id = $1`, id)
}

// LockPerevalStatus берёт строку FOR UPDATE; имеет смысл только внутри WithTx.
func (r *perevalRepository) LockPerevalStatus(ctx context.Context, id int64) (models.Status, error) {
	return r.status(ctx, `SELECT status FROM pereval_added WHERE id = $1 FOR UPDATE`, id)
}

func (r *perevalRepository) status(ctx context.Context, q string, id int64) (models.Status, error) {
	var s string
	if err := r.q.QueryRowxContext(ctx, q, id).Scan(&s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get pereval status: %w", err)
	}
	return models.Status(s), nil
}

// UpdatePereval меняет только поля перевала и уровни; координаты и автор не трогаются.
func (r *perevalRepository) UpdatePereval(ctx context.Context, id int64, p *models.Pereval) error {
	const q = `
		UPDATE pereval_added
		SET beauty_title=$1, title=$2, other_titles=$3, connect=$4,
			level_winter=$5, level_summer=$6, level_autumn=$7, level_spring=$8
		WHERE id=$9
	`
	res, err := r.q.ExecContext(ctx, q,
		p.BeautyTitle, p.Title, p.OtherTitles, p.Connect,
		p.Level.Winter, p.Level.Summer, p.Level.Autumn, p.Level.Spring,
		id,
	)
	if err != nil {
		return fmt.Errorf("update pereval: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *perevalRepository) ReplaceImages(ctx context.Context, perevalID int64, images []models.Image) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM pereval_images WHERE pereval_id = $1`, perevalID); err != nil {
		return fmt.Errorf("delete images: %w", err)
	}
	for _, img := range images {
		if err := r.AddImage(ctx, perevalID, img.Data, img.Title); err != nil {
			return err
		}
	}
	return nil
}
