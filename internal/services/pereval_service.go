package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"pereval/internal/models"
	"pereval/internal/pdf"
	"pereval/internal/repositories"
)

var (
	ErrNotFound = repositories.ErrNotFound
	// ErrEditForbidden: перевал уже на модерации или обработан.
	ErrEditForbidden = errors.New("editing forbidden")
	// ErrCardUnavailable: генератор PDF не настроен.
	ErrCardUnavailable = errors.New("pass card unavailable")
)

// Notifier получает уже сохранённый перевал. Ошибки только логируются.
type Notifier interface {
	NotifySubmitted(ctx context.Context, p *models.Pereval) error
}

// PerevalService defines the business logic around pass submissions.
type PerevalService interface {
	Submit(ctx context.Context, p *models.Pereval) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Pereval, error)
	ListByUserEmail(ctx context.Context, email string) ([]models.PerevalSummary, error)
	Update(ctx context.Context, id int64, p *models.Pereval) error
	RenderCard(ctx context.Context, id int64) ([]byte, error)
}

// DefaultNotifyTimeout ограничивает рассылку уведомлений, если таймаут не задан.
const DefaultNotifyTimeout = 5 * time.Second

type perevalService struct {
	repo          repositories.PerevalRepository
	cards         pdf.Generator
	notifiers     []Notifier
	notifyTimeout time.Duration
	log           zerolog.Logger
}

// NewPerevalService: cards может быть nil, тогда карточка отдаёт ErrCardUnavailable.
// notifyTimeout <= 0 заменяется на DefaultNotifyTimeout.
func NewPerevalService(repo repositories.PerevalRepository, cards pdf.Generator, log zerolog.Logger, notifyTimeout time.Duration, notifiers ...Notifier) PerevalService {
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}
	return &perevalService{repo: repo, cards: cards, notifiers: notifiers, notifyTimeout: notifyTimeout, log: log}
}

func (s *perevalService) Submit(ctx context.Context, p *models.Pereval) (int64, error) {
	var id int64
	err := s.repo.WithTx(ctx, func(tx repositories.PerevalRepository) error {
		userID, err := tx.AddUser(ctx, &p.User)
		if err != nil {
			return err
		}
		coordID, err := tx.AddCoords(ctx, &p.Coords)
		if err != nil {
			return err
		}
		id, err = tx.AddPereval(ctx, p, userID, coordID)
		if err != nil {
			return err
		}
		for _, img := range p.Images {
			if err := tx.AddImage(ctx, id, img.Data, img.Title); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("submit pereval: %w", err)
	}

	p.ID = id
	p.Status = models.StatusNew
	s.notify(ctx, p)
	return id, nil
}

// notify не задерживает ответ дольше notifyTimeout: зависший уведомитель дорабатывает в фоне,
// его результат только логируется.
func (s *perevalService) notify(ctx context.Context, p *models.Pereval) {
	if len(s.notifiers) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	// копия: фоновые уведомители не должны видеть дальнейших изменений p
	snapshot := *p
	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, n := range s.notifiers {
			if err := n.NotifySubmitted(ctx, &snapshot); err != nil {
				s.log.Warn().Err(err).Int64("pereval_id", snapshot.ID).Str("notifier", fmt.Sprintf("%T", n)).Msg("notification failed")
			}
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.log.Warn().Err(ctx.Err()).Int64("pereval_id", p.ID).Dur("timeout", s.notifyTimeout).Msg("notification timed out")
	}
}

func (s *perevalService) GetByID(ctx context.Context, id int64) (*models.Pereval, error) {
	return s.repo.GetPerevalByID(ctx, id)
}

func (s *perevalService) ListByUserEmail(ctx context.Context, email string) ([]models.PerevalSummary, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return []models.PerevalSummary{}, nil
	}
	return s.repo.GetPerevalsByUserEmail(ctx, email)
}

// Update проверяет статус и пишет изменения под одной блокировкой строки.
func (s *perevalService) Update(ctx context.Context, id int64, p *models.Pereval) error {
	return s.repo.WithTx(ctx, func(tx repositories.PerevalRepository) error {
		status, err := tx.LockPerevalStatus(ctx, id)
		if err != nil {
			return err
		}
		if !status.Editable() {
			return ErrEditForbidden
		}
		if err := tx.UpdatePereval(ctx, id, p); err != nil {
			return err
		}
		return tx.ReplaceImages(ctx, id, p.Images)
	})
}

func (s *perevalService) RenderCard(ctx context.Context, id int64) ([]byte, error) {
	if s.cards == nil {
		return nil, ErrCardUnavailable
	}
	p, err := s.repo.GetPerevalByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := s.cards.PassCard(p)
	if errors.Is(err, pdf.ErrNoFont) {
		return nil, fmt.Errorf("%w: %v", ErrCardUnavailable, err)
	}
	return out, err
}
