package repositories

import (
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound: запись с таким id отсутствует.
var ErrNotFound = errors.New("not found")

// ON CONFLICT без подходящего уникального индекса.
const sqlStateNoConflictTarget = "42P10"

// SQLState достаёт код SQLSTATE из ошибки драйвера; пустая строка, если это не ошибка postgres.
func SQLState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
