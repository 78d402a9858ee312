package expense

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/fkhayef/splitledger/internal/expense/split"
	"github.com/fkhayef/splitledger/internal/ledger"
)

// AmountInput accepts either a JSON number or a numeric string
type AmountInput string

// UnmarshalJSON implements json.Unmarshaler
func (a *AmountInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = AmountInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("amount must be a number or a numeric string")
	}
	*a = AmountInput(n.String())
	return nil
}

// CreateExpenseRequest represents the request to add an expense
type CreateExpenseRequest struct {
	Payer        string      `json:"payer" validate:"required" example:"Alice"`
	Amount       AmountInput `json:"amount" validate:"required" swaggertype:"string" example:"90"`
	SplitType    string      `json:"split_type,omitempty" validate:"omitempty,oneof=EVEN even" example:"EVEN"`
	Participants []string    `json:"participants" validate:"required,min=2" example:"Alice,Bob,Carol"`
}

// ToExpense converts the request into an Expense
func (r *CreateExpenseRequest) ToExpense() (Expense, error) {
	e, err := New(r.Payer, string(r.Amount), r.Participants)
	if err != nil {
		return Expense{}, err
	}
	if r.SplitType != "" {
		e.SplitType = split.SplitType(strings.ToUpper(r.SplitType))
	}
	return e, nil
}

// SplitRecordResponse represents a raw expense entry
type SplitRecordResponse struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"` // e.g., "Alice pays Bob: Rupees 30.00"
}

// ExpenseResponse represents the response for an added expense
type ExpenseResponse struct {
	Payer        string                 `json:"payer"`
	Amount       float64                `json:"amount"`
	Participants []string               `json:"participants"`
	Records      []*SplitRecordResponse `json:"records"`
}

// NewSplitRecordResponse converts a ledger record to its DTO
func NewSplitRecordResponse(r ledger.SplitRecord, currency string) *SplitRecordResponse {
	return &SplitRecordResponse{
		From:    string(r.From),
		To:      string(r.To),
		Amount:  r.Amount.InexactFloat64(),
		Display: r.Format(currency),
	}
}

// ToResponse converts an expense and the records it produced to an ExpenseResponse DTO
func (e Expense) ToResponse(records []ledger.SplitRecord, currency string) *ExpenseResponse {
	participants := make([]string, len(e.Participants))
	for i, p := range e.Participants {
		participants[i] = string(p)
	}
	return &ExpenseResponse{
		Payer:        string(e.Payer),
		Amount:       e.Amount.InexactFloat64(),
		Participants: participants,
		Records:      NewSplitRecordResponses(records, currency),
	}
}

// NewSplitRecordResponses converts a list of records
func NewSplitRecordResponses(records []ledger.SplitRecord, currency string) []*SplitRecordResponse {
	out := make([]*SplitRecordResponse, len(records))
	for i, r := range records {
		out[i] = NewSplitRecordResponse(r, currency)
	}
	return out
}
