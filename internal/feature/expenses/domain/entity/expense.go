package entity

import "time"

// Expense represents a single dated monetary transaction owned by one user.
// Ownership never changes after creation; an expense is only ever visible to,
// modifiable by, or deletable by its owner.
type Expense struct {
	ID          uint      // Unique identifier
	UserID      uint      // Owning user's ID
	Date        time.Time // Calendar date of the transaction
	Amount      float64   // Positive, finite currency magnitude
	Category    Category  // One value from the closed enumeration
	Description string    // Optional free text
	CreatedAt   time.Time // Record creation time
	UpdatedAt   time.Time // Last modification time
}
