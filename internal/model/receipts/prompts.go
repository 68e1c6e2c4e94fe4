package receipts

import (
	"fmt"
	"strings"
)

const (
	categoryMaxTokens   = 100
	extractionMaxTokens = 2000
)

// OtherCategory is the answer for a receipt none of the labels fit.
const OtherCategory = "Other"

// DefaultCategories are offered when the caller does not bring its own.
var DefaultCategories = []string{
	"Food & Dining",
	"Groceries",
	"Transport",
	"Utilities",
	"Shopping",
	"Entertainment",
	"Healthcare",
	"Education",
	"Travel",
	OtherCategory,
}

const extractionPrompt = "Extract the vendor name, amount, category (e.g., Food, Transport, Utilities, " +
	"Entertainment, Groceries, Shopping, Health, Education, Travel, Other), description, and date " +
	"from this receipt image. If any information is missing or unreadable, use 'Not Applicable'. " +
	"Provide the output in a JSON format with keys: vendor, amount, category, description, date."

func categoryPrompt(categories []string) string {
	return fmt.Sprintf(`Analyze the provided receipt image. Extract relevant text and categorize the expense into one of the following categories: %s.
If none of the categories fit, choose "%s".
Provide only the category name as your answer, e.g., "%s".`,
		strings.Join(categories, ", "), OtherCategory, categories[0])
}
