// Package models defines the persisted entities. IDs are UUIDs generated
// client-side in BeforeCreate so the same models work across drivers.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryType classifies categories and transactions.
type EntryType string

const (
	TypeExpense EntryType = "expense"
	TypeIncome  EntryType = "income"
)

// User is one account record. Password holds the bcrypt hash, never the
// plaintext, and is excluded from every JSON response.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"size:255;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category groups transactions for one user. Deleting the user cascades.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name      string    `gorm:"size:55;not null" json:"name"`
	Type      EntryType `gorm:"size:10" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Transaction is a single income or expense entry. Deleting the owning user
// cascades; deleting the category nulls the reference.
type Transaction struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User            *User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CategoryID      *uuid.UUID `gorm:"type:uuid" json:"category_id"`
	Category        *Category  `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Amount          float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description     string     `gorm:"type:text" json:"description"`
	TransactionDate time.Time  `gorm:"type:date;not null" json:"transaction_date"`
	Type            EntryType  `gorm:"size:10" json:"type"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Budget is a spending cap for one user, optionally tied to a category.
type Budget struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User       *User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CategoryID *uuid.UUID `gorm:"type:uuid" json:"category_id"`
	Category   *Category  `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Amount     float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// All lists every model for auto-migration, in FK dependency order.
func All() []interface{} {
	return []interface{}{&User{}, &Category{}, &Transaction{}, &Budget{}}
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(_ *gorm.DB) error        { ensureID(&u.ID); return nil }
func (c *Category) BeforeCreate(_ *gorm.DB) error    { ensureID(&c.ID); return nil }
func (t *Transaction) BeforeCreate(_ *gorm.DB) error { ensureID(&t.ID); return nil }
func (b *Budget) BeforeCreate(_ *gorm.DB) error      { ensureID(&b.ID); return nil }

// PublicUser is the trimmed profile returned by the API: never the hash.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}

// Public returns the user's public profile.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Username: u.Username}
}
