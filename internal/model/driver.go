// Package model defines the record types shared by the loader, the statistics
// engine and the output layers.
package model

// Driver is one row of the drivers relation.
type Driver struct {
	ID          int    `csv:"driverId" db:"driver_id" json:"driver_id" yaml:"driver_id"`
	Forename    string `csv:"forename" db:"forename" json:"forename" yaml:"forename"`
	Surname     string `csv:"surname" db:"surname" json:"surname" yaml:"surname"`
	DOB         string `csv:"dob" db:"dob" json:"dob" yaml:"dob"`
	Nationality string `csv:"nationality" db:"nationality" json:"nationality" yaml:"nationality"`
	FullName    string `csv:"-" db:"-" json:"full_name" yaml:"full_name"`
}

// FullNameOf joins forename and surname with a single space. Casing and
// accents are left untouched.
func FullNameOf(forename, surname string) string {
	return forename + " " + surname
}

// WithFullName returns a copy of d with FullName derived from its name parts.
func (d Driver) WithFullName() Driver {
	d.FullName = FullNameOf(d.Forename, d.Surname)
	return d
}
