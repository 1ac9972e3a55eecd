package loader

// Queries shared by the SQL sources. Column names follow the CSV headers, so
// tables imported straight from the CSV files work unchanged. Aliases match
// the model db tags.
const (
	queryResults = `SELECT "resultId" AS result_id, "driverId" AS driver_id, "raceId" AS race_id,
	"constructorId" AS constructor_id, COALESCE(CAST("position" AS TEXT), '') AS position,
	"points" AS points, "laps" AS laps, "grid" AS grid
FROM results`

	queryDrivers = `SELECT "driverId" AS driver_id, "forename" AS forename, "surname" AS surname,
	COALESCE(CAST("dob" AS TEXT), '') AS dob, COALESCE("nationality", '') AS nationality
FROM drivers`

	queryRaces = `SELECT "raceId" AS race_id, "name" AS name, "year" AS year FROM races`

	queryConstructors = `SELECT "constructorId" AS constructor_id, "name" AS name FROM constructors`

	queryChampions = `SELECT "Driver" AS driver, COALESCE("Nationality", '') AS nationality, "Titles" AS titles
FROM world_champions`
)
