package schema

// BillingInvoiceTable represents the 'billing.invoice' table
type BillingInvoiceTable struct {
	Table         string
	ID            string
	Number        string
	CustomerID    string
	IssueDate     string
	IssuerName    string
	IssuerAddress string
	Note          string
	Status        string
	Items         string
	Subtotal      string
	TotalDiscount string
	GrandTotal    string
	RoundOff      string
	PaidAmount    string
	DueAmount     string
	CreatedAt     string
	UpdatedAt     string
	DeletedAt     string
}

// BillingInvoice is the schema definition for billing.invoice
var BillingInvoice = BillingInvoiceTable{
	Table:         "billing.invoice",
	ID:            "id",
	Number:        "invoicenumber",
	CustomerID:    "customerid",
	IssueDate:     "issuedate",
	IssuerName:    "issuername",
	IssuerAddress: "issueraddress",
	Note:          "note",
	Status:        "status",
	Items:         "items",
	Subtotal:      "subtotal",
	TotalDiscount: "totaldiscount",
	GrandTotal:    "grandtotal",
	RoundOff:      "roundoff",
	PaidAmount:    "paidamount",
	DueAmount:     "dueamount",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
	DeletedAt:     "deletedat",
}

// Columns returns all standard column names
func (t BillingInvoiceTable) Columns() []string {
	return []string{
		t.ID, t.Number, t.CustomerID, t.IssueDate, t.IssuerName, t.IssuerAddress,
		t.Note, t.Status, t.Items, t.Subtotal, t.TotalDiscount, t.GrandTotal,
		t.RoundOff, t.PaidAmount, t.DueAmount, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
