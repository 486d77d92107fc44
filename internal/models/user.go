package models

// User: автор заявки. Определяется по email, повторно не создаётся.
type User struct {
	ID    int64   `json:"-" db:"id"`
	Email string  `json:"email" db:"email"`
	Fam   string  `json:"fam" db:"fam"`
	Name  string  `json:"name" db:"name"`
	Otc   *string `json:"otc" db:"otc"`
	Phone string  `json:"phone" db:"phone"`
}
