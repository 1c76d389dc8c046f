package project

// columns maps the external field vocabulary to table columns. Filters,
// sorts, updates and distinct-value lookups all validate against this map
// so an unknown name surfaces as InvalidFieldError instead of leaking into
// SQL.
var columns = map[string]string{
	"id":                  "id",
	"project_name":        "project_name",
	"project_group":       "project_group",
	"department":          "department",
	"date_to_client":      "date_to_client",
	"date_assigned_to_us": "date_assigned_to_us",
	"assigned_attorney":   "assigned_attorney",
	"qcp_attorney":        "qcp_attorney",
	"internal_deadline":   "internal_deadline",
	"delivery_deadline":   "delivery_deadline",
	"status":              "status",
	"notes":               "notes",
	"created_at":          "created_at",
	"updated_at":          "updated_at",
}

// NormalizedFields are the free-text fields canonicalized against stored
// values on create and update.
var NormalizedFields = []string{"department", "assigned_attorney", "qcp_attorney"}

// distinctFields are the fields DistinctValues accepts, i.e. the ones the
// autocomplete widget and filter dropdowns draw from.
var distinctFields = map[string]bool{
	"department":        true,
	"assigned_attorney": true,
	"qcp_attorney":      true,
	"status":            true,
	"project_group":     true,
}

// immutableFields can never be set through Update.
var immutableFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"deleted_at": true,
}

func isNormalized(field string) bool {
	for _, f := range NormalizedFields {
		if f == field {
			return true
		}
	}
	return false
}
