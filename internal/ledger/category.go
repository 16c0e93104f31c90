package ledger

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// CategoryType says whether a category groups income or expenses.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

const (
	DefaultCategoryColor = "#ef4444"
	DefaultCategoryIcon  = "📁"
)

// Category is a flat, per-user budget category.
type Category struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Type      CategoryType
	Color     string
	Icon      string
	CreatedAt time.Time
}

// ValidateCategory checks a new category and fills in the default color and icon.
func ValidateCategory(c *Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: category name", ErrMissingField)
	}

	if c.Type == "" {
		c.Type = CategoryExpense
	}

	if c.Type != CategoryIncome && c.Type != CategoryExpense {
		return fmt.Errorf("%w: category type %q", ErrInvalidType, c.Type)
	}

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}

	if utf8.RuneCountInString(c.Icon) > 2 {
		return fmt.Errorf("%w: icon must be at most 2 characters", ErrInvalidType)
	}

	return nil
}
