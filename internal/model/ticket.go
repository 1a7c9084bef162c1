package model

import (
	"fmt"
	"time"
)

// TicketCount is the fixed size of a raffle's inventory. Numbers run from
// "00" through "99" and the full set is created together on first access.
const TicketCount = 100

// TicketStatus 票券狀態
type TicketStatus string

const (
	TicketAvailable TicketStatus = "available"
	TicketTaken     TicketStatus = "taken"
)

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketAvailable, TicketTaken:
		return true
	}
	return false
}

// PaymentMethod 付款方式
type PaymentMethod string

const (
	PaymentNone     PaymentMethod = "none"
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentNone, PaymentCash, PaymentTransfer:
		return true
	}
	return false
}

// FormatTicketNumber renders an index 0..99 as the two-digit zero-padded
// number stored on a ticket. Lexicographic order on the result matches
// numeric order, so `ORDER BY number` returns tickets in numeric order.
func FormatTicketNumber(i int) string {
	return fmt.Sprintf("%02d", i)
}

// IsTicketNumber reports whether s is a well-formed ticket number.
func IsTicketNumber(s string) bool {
	if len(s) != 2 {
		return false
	}
	return s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}

type Ticket struct {
	ID            string        `json:"id" db:"id"`
	RaffleID      string        `json:"raffle_id" db:"raffle_id"`
	Number        string        `json:"number" db:"number"`
	Status        TicketStatus  `json:"status" db:"status"`
	Paid          bool          `json:"paid" db:"paid"`
	Buyer         string        `json:"buyer" db:"buyer"`
	PaymentMethod PaymentMethod `json:"payment_method" db:"payment_method"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// TicketState is the change-set applied to one or many tickets. The same
// shape drives single edits, bulk assignment and random assignment.
type TicketState struct {
	Status        TicketStatus  `json:"status"`
	Paid          bool          `json:"paid"`
	Buyer         string        `json:"buyer"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// Validate rejects unknown enum values before anything touches the store.
func (s TicketState) Validate() bool {
	return s.Status.IsValid() && s.PaymentMethod.IsValid()
}

// Normalize enforces the ticket invariants server-side, regardless of what
// the caller supplied: an available ticket is unpaid with no buyer and no
// payment method, and an unpaid ticket has no payment method.
func (s TicketState) Normalize() TicketState {
	if s.Status == TicketAvailable {
		s.Paid = false
		s.Buyer = ""
		s.PaymentMethod = PaymentNone
	}
	if !s.Paid {
		s.PaymentMethod = PaymentNone
	}
	return s
}
