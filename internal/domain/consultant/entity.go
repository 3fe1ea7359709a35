package consultant

import "time"

// Grade defaults to junior when the consultant record carries none.
const DefaultGrade = "CONSULTANT_JUNIOR"

// Consultant - The service provider whose compensation is calculated.
type Consultant struct {
	ID        string
	Name      string
	Email     string
	Grade     string
	BranchID  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
