package expense

// NotApplicable fills every field that was not supplied or could not be read.
const NotApplicable = "Not Applicable"

// Record is one stored expense, keyed by (UserID, ExpenseID).
type Record struct {
	UserID      string `json:"userId" dynamodbav:"userId"`
	ExpenseID   string `json:"expenseId" dynamodbav:"expenseId"`
	Vendor      string `json:"vendor" dynamodbav:"vendor"`
	Amount      string `json:"amount" dynamodbav:"amount"`
	Category    string `json:"category" dynamodbav:"category"`
	Description string `json:"description" dynamodbav:"description"`
	Date        string `json:"date" dynamodbav:"date"`
	S3Key       string `json:"s3_key,omitempty" dynamodbav:"s3_key,omitempty"`
	IsRecurring bool   `json:"isRecurring" dynamodbav:"isRecurring"`
	CreatedAt   string `json:"createdAt" dynamodbav:"createdAt"`
}

// Update is the full set of attributes an update writes. An empty S3Key
// leaves the stored image reference untouched.
type Update struct {
	Vendor      string `json:"vendor" dynamodbav:"vendor"`
	Amount      string `json:"amount" dynamodbav:"amount"`
	Category    string `json:"category" dynamodbav:"category"`
	Description string `json:"description" dynamodbav:"description"`
	Date        string `json:"date" dynamodbav:"date"`
	IsRecurring bool   `json:"isRecurring" dynamodbav:"isRecurring"`
	S3Key       string `json:"s3_key,omitempty" dynamodbav:"s3_key,omitempty"`
}

// Apply copies the update onto r the way the table would.
func (u Update) Apply(r *Record) {
	r.Vendor = u.Vendor
	r.Amount = u.Amount
	r.Category = u.Category
	r.Description = u.Description
	r.Date = u.Date
	r.IsRecurring = u.IsRecurring
	if u.S3Key != "" {
		r.S3Key = u.S3Key
	}
}

// Extracted is what the vision model read off a receipt.
type Extracted struct {
	Vendor      string `json:"vendor"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func FallbackExtracted() Extracted {
	return Extracted{
		Vendor:      NotApplicable,
		Amount:      NotApplicable,
		Category:    NotApplicable,
		Description: NotApplicable,
		Date:        NotApplicable,
	}
}
