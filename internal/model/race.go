package model

// Race is one row of the races relation. Name is the event/circuit name.
type Race struct {
	ID   int    `csv:"raceId" db:"race_id" json:"race_id" yaml:"race_id"`
	Name string `csv:"name" db:"name" json:"name" yaml:"name"`
	Year int    `csv:"year" db:"year" json:"year" yaml:"year"`
}

// Constructor is one row of the constructors relation.
type Constructor struct {
	ID   int    `csv:"constructorId" db:"constructor_id" json:"constructor_id" yaml:"constructor_id"`
	Name string `csv:"name" db:"name" json:"name" yaml:"name"`
}

// Champion is one row of the world champions summary table. It is not joined
// against the other relations.
type Champion struct {
	Driver      string `csv:"Driver" db:"driver" json:"driver" yaml:"driver"`
	Nationality string `csv:"Nationality" db:"nationality" json:"nationality" yaml:"nationality"`
	Titles      int    `csv:"Titles" db:"titles" json:"titles" yaml:"titles"`
}
