package sheetparser

// DepartmentTable maps two-letter department initials to department names.
// The zero value maps nothing.
type DepartmentTable struct {
	names map[string]string
}

// NewDepartmentTable copies names, so later changes to the map are not seen.
func NewDepartmentTable(names map[string]string) DepartmentTable {
	t := DepartmentTable{names: make(map[string]string, len(names))}
	for k, v := range names {
		t.names[k] = v
	}
	return t
}

// DefaultDepartments is the faculty's current initials table.
func DefaultDepartments() DepartmentTable {
	return NewDepartmentTable(map[string]string{
		"CE": "Computer Science And Engineering",
		"EL": "Electrical and Electronic Engineering",
		"MC": "Mechanical Engineering",
		"MN": "Mining Engineering",
		"GL": "Geological Engineering",
		"GM": "Geomatic Engineering",
		"MR": "Minerals Engineering",
		"PE": "Petroleum Engineering",
		"NG": "Natural Gas Engineering",
		"CH": "Chemical Engineering",
		"ES": "Environmental and Safety Engineering",
		"RN": "Renewable Energy Engineering",
		"MA": "Mathematical Sciences",
		"IS": "Information Systems and Technology",
		"LT": "Logistics and Transport Management",
		"SP": "Spatial Planning",
		"TC": "Technical Communication",
	})
}

// Name returns the department name for initials, or initials itself if unknown.
func (t DepartmentTable) Name(initials string) string {
	if name, ok := t.names[initials]; ok {
		return name
	}
	return initials
}

func (t DepartmentTable) Len() int {
	return len(t.names)
}
