package models

import (
	"github.com/google/uuid"
)

// ensureID assigns a fresh UUID when the caller did not supply one.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// PairKey identifies an unordered pair of users; PairKey(a, b) == PairKey(b, a).
func PairKey(a, b uuid.UUID) string {
	x, y := a.String(), b.String()
	if x > y {
		x, y = y, x
	}
	return x + ":" + y
}

// All returns every persisted model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Skill{},
		&Availability{},
		&SwapRequest{},
		&Rating{},
		&Admin{},
		&Chat{},
		&ChatMessage{},
	}
}
