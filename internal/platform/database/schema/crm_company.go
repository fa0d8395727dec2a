package schema

// CRMCompanyTable represents the 'crm.company' table
type CRMCompanyTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Website   string
	TaxNumber string
	Notes     string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// CRMCompany is the schema definition for crm.company
var CRMCompany = CRMCompanyTable{
	Table:     "crm.company",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Phone:     "phone",
	Address:   "address",
	Website:   "website",
	TaxNumber: "taxnumber",
	Notes:     "notes",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

// Columns returns all standard column names
func (t CRMCompanyTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.Phone, t.Address, t.Website, t.TaxNumber,
		t.Notes, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
