package services

import (
	"context"
	"errors"
	"time"

	"pereval/internal/models"
	"pereval/internal/repositories"
)

// fakeRepo хранит всё в памяти; WithTx откатывает состояние при ошибке.
type fakeRepo struct {
	users    map[string]int64
	coords   map[int64]models.Coords
	perevals map[int64]*models.Pereval
	images   map[int64][]models.Image
	nextID   int64

	failOn  string // имя операции, на которой вернуть ошибку
	updates int
	queries []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    map[string]int64{},
		coords:   map[int64]models.Coords{},
		perevals: map[int64]*models.Pereval{},
		images:   map[int64][]models.Image{},
	}
}

var errInjected = errors.New("injected failure")

func (r *fakeRepo) hit(op string) error {
	r.queries = append(r.queries, op)
	if r.failOn == op {
		return errInjected
	}
	return nil
}

func (r *fakeRepo) id() int64 {
	r.nextID++
	return r.nextID
}

func (r *fakeRepo) WithTx(ctx context.Context, fn func(repo repositories.PerevalRepository) error) error {
	users := make(map[string]int64, len(r.users))
	for k, v := range r.users {
		users[k] = v
	}
	coords := make(map[int64]models.Coords, len(r.coords))
	for k, v := range r.coords {
		coords[k] = v
	}
	perevals := make(map[int64]*models.Pereval, len(r.perevals))
	for k, v := range r.perevals {
		cp := *v
		perevals[k] = &cp
	}
	images := make(map[int64][]models.Image, len(r.images))
	for k, v := range r.images {
		images[k] = v
	}
	updates := r.updates

	if err := fn(r); err != nil {
		r.users, r.coords, r.perevals, r.images, r.updates = users, coords, perevals, images, updates
		return err
	}
	return nil
}

func (r *fakeRepo) AddUser(_ context.Context, u *models.User) (int64, error) {
	if err := r.hit("AddUser"); err != nil {
		return 0, err
	}
	if id, ok := r.users[u.Email]; ok {
		return id, nil
	}
	id := r.id()
	r.users[u.Email] = id
	return id, nil
}

func (r *fakeRepo) AddCoords(_ context.Context, c *models.Coords) (int64, error) {
	if err := r.hit("AddCoords"); err != nil {
		return 0, err
	}
	id := r.id()
	r.coords[id] = *c
	return id, nil
}

func (r *fakeRepo) AddPereval(_ context.Context, p *models.Pereval, _, _ int64) (int64, error) {
	if err := r.hit("AddPereval"); err != nil {
		return 0, err
	}
	id := r.id()
	cp := *p
	cp.ID = id
	cp.Status = models.StatusNew
	cp.AddTime = time.Now()
	cp.Images = nil
	r.perevals[id] = &cp
	return id, nil
}

func (r *fakeRepo) AddImage(_ context.Context, perevalID int64, data []byte, title *string) error {
	if err := r.hit("AddImage"); err != nil {
		return err
	}
	r.images[perevalID] = append(r.images[perevalID], models.Image{ID: r.id(), Title: title, Data: data})
	return nil
}

func (r *fakeRepo) GetPerevalByID(_ context.Context, id int64) (*models.Pereval, error) {
	if err := r.hit("GetPerevalByID"); err != nil {
		return nil, err
	}
	p, ok := r.perevals[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	cp.Images = append([]models.Image{}, r.images[id]...)
	return &cp, nil
}

func (r *fakeRepo) GetPerevalsByUserEmail(_ context.Context, email string) ([]models.PerevalSummary, error) {
	if err := r.hit("GetPerevalsByUserEmail"); err != nil {
		return nil, err
	}
	res := []models.PerevalSummary{}
	for id := int64(1); id <= r.nextID; id++ {
		p, ok := r.perevals[id]
		if ok && p.User.Email == email {
			res = append(res, models.PerevalSummary{ID: p.ID, Title: p.Title, AddTime: p.AddTime, Status: p.Status})
		}
	}
	return res, nil
}

func (r *fakeRepo) GetPerevalStatus(_ context.Context, id int64) (models.Status, error) {
	if err := r.hit("GetPerevalStatus"); err != nil {
		return "", err
	}
	p, ok := r.perevals[id]
	if !ok {
		return "", repositories.ErrNotFound
	}
	return p.Status, nil
}

func (r *fakeRepo) LockPerevalStatus(ctx context.Context, id int64) (models.Status, error) {
	if err := r.hit("LockPerevalStatus"); err != nil {
		return "", err
	}
	p, ok := r.perevals[id]
	if !ok {
		return "", repositories.ErrNotFound
	}
	return p.Status, nil
}

func (r *fakeRepo) UpdatePereval(_ context.Context, id int64, p *models.Pereval) error {
	if err := r.hit("UpdatePereval"); err != nil {
		return err
	}
	cur, ok := r.perevals[id]
	if !ok {
		return repositories.ErrNotFound
	}
	r.updates++
	cur.BeautyTitle, cur.Title, cur.OtherTitles, cur.Connect = p.BeautyTitle, p.Title, p.OtherTitles, p.Connect
	cur.Level = p.Level
	return nil
}

func (r *fakeRepo) ReplaceImages(_ context.Context, perevalID int64, images []models.Image) error {
	if err := r.hit("ReplaceImages"); err != nil {
		return err
	}
	r.images[perevalID] = nil
	for _, img := range images {
		r.images[perevalID] = append(r.images[perevalID], models.Image{ID: r.id(), Title: img.Title, Data: img.Data})
	}
	return nil
}
