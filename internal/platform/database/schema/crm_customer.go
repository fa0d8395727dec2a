package schema

// CRMCustomerTable represents the 'crm.customer' table
type CRMCustomerTable struct {
	Table     string
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	Address   string
	Notes     string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// CRMCustomer is the schema definition for crm.customer
var CRMCustomer = CRMCustomerTable{
	Table:     "crm.customer",
	ID:        "id",
	CompanyID: "companyid",
	Name:      "name",
	Email:     "email",
	Phone:     "phone",
	Address:   "address",
	Notes:     "notes",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

// Columns returns all standard column names
func (t CRMCustomerTable) Columns() []string {
	return []string{
		t.ID, t.CompanyID, t.Name, t.Email, t.Phone, t.Address, t.Notes,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
