package models

// Invoice holds the fee position of one student
type Invoice struct {
	ID         int64   `json:"id" db:"id"`
	StudentID  string  `json:"student_id" db:"student_id"`
	TotalFees  float64 `json:"total_fees" db:"total_fees"`
	AmountPaid float64 `json:"amount_paid" db:"amount_paid"`
	Holds      string  `json:"holds" db:"holds"`
}

// Balance is what the student still owes
func (i *Invoice) Balance() float64 {
	return i.TotalFees - i.AmountPaid
}
