package schema

// BillingPaymentTable represents the 'billing.payment' table
type BillingPaymentTable struct {
	Table       string
	ID          string
	InvoiceID   string
	PaymentType string
	PaymentDate string
	Amount      string
	Note        string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// BillingPayment is the schema definition for billing.payment
var BillingPayment = BillingPaymentTable{
	Table:       "billing.payment",
	ID:          "id",
	InvoiceID:   "invoiceid",
	PaymentType: "paymenttype",
	PaymentDate: "paymentdate",
	Amount:      "amount",
	Note:        "note",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

// Columns returns all standard column names
func (t BillingPaymentTable) Columns() []string {
	return []string{
		t.ID, t.InvoiceID, t.PaymentType, t.PaymentDate, t.Amount, t.Note,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
