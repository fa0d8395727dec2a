package schema

// CRMTaskTable represents the 'crm.task' table
type CRMTaskTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	AssigneeID  string
	CustomerID  string
	Status      string
	DueDate     string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// CRMTask is the schema definition for crm.task
var CRMTask = CRMTaskTable{
	Table:       "crm.task",
	ID:          "id",
	Title:       "title",
	Description: "description",
	AssigneeID:  "assigneeid",
	CustomerID:  "customerid",
	Status:      "status",
	DueDate:     "duedate",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

// Columns returns all standard column names
func (t CRMTaskTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.AssigneeID, t.CustomerID,
		t.Status, t.DueDate, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
