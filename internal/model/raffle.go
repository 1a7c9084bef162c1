package model

import (
	"regexp"
	"time"
)

// codePattern matches the short display code of a raffle: the letter R
// followed by digits, case-insensitive ("R7", "r12").
var codePattern = regexp.MustCompile(`^[Rr][0-9]+$`)

// IsRaffleCode reports whether a user-supplied token looks like a short
// code rather than an opaque raffle id.
func IsRaffleCode(token string) bool {
	return codePattern.MatchString(token)
}

type Raffle struct {
	ID        string     `json:"id" db:"id"`
	Code      string     `json:"code" db:"code"`
	Title     string     `json:"title" db:"title"`
	Slogan    string     `json:"slogan" db:"slogan"`
	Prize     string     `json:"prize" db:"prize"`
	Price     float64    `json:"price" db:"price"`
	DrawDate  *time.Time `json:"draw_date,omitempty" db:"draw_date"`
	OwnerID   string     `json:"owner_id" db:"owner_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
