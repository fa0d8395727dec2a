package schema

// CatalogProductTable represents the 'catalog.product' table
type CatalogProductTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	UnitPrice   string
	BaseCost    string
	Currency    string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// CatalogProduct is the schema definition for catalog.product
var CatalogProduct = CatalogProductTable{
	Table:       "catalog.product",
	ID:          "id",
	Name:        "name",
	Description: "description",
	UnitPrice:   "unitprice",
	BaseCost:    "basecost",
	Currency:    "currency",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

// Columns returns all standard column names
func (t CatalogProductTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Description, t.UnitPrice, t.BaseCost, t.Currency,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
