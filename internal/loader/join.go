package loader

import "github.com/sells-group/f1-analytics/internal/model"

// Join combines drivers, results, races and constructors with inner joins on
// their ids. Results whose driver, race or constructor is absent are dropped
// without notice. Rows are ordered by driver table order, then by result
// order. Duplicate keys multiply rows like a relational join.
func Join(drivers []model.Driver, results []model.Result, races []model.Race, constructors []model.Constructor) []model.JoinedRecord {
	resultsByDriver := make(map[int][]int, len(drivers))
	for i, r := range results {
		resultsByDriver[r.DriverID] = append(resultsByDriver[r.DriverID], i)
	}

	racesByID := make(map[int][]model.Race, len(races))
	for _, r := range races {
		racesByID[r.ID] = append(racesByID[r.ID], r)
	}

	constructorsByID := make(map[int][]model.Constructor, len(constructors))
	for _, c := range constructors {
		constructorsByID[c.ID] = append(constructorsByID[c.ID], c)
	}

	out := make([]model.JoinedRecord, 0, len(results))
	for _, d := range drivers {
		d = d.WithFullName()
		for _, idx := range resultsByDriver[d.ID] {
			res := results[idx]
			for _, race := range racesByID[res.RaceID] {
				for _, c := range constructorsByID[res.ConstructorID] {
					out = append(out, model.JoinedRecord{
						DriverID:        d.ID,
						FullName:        d.FullName,
						Forename:        d.Forename,
						Surname:         d.Surname,
						DOB:             d.DOB,
						Nationality:     d.Nationality,
						ResultID:        res.ID,
						Position:        res.Position,
						Points:          res.Points,
						Laps:            res.Laps,
						Grid:            res.Grid,
						RaceID:          race.ID,
						RaceName:        race.Name,
						Year:            race.Year,
						ConstructorID:   c.ID,
						ConstructorName: c.Name,
					})
				}
			}
		}
	}
	return out
}
