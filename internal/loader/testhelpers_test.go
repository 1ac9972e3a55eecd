package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixture: three drivers, one of them without results; one result points at
// an unknown race and one at an unknown constructor.
var fixtureFiles = map[string]string{
	"drivers.csv": `driverId,driverRef,number,code,forename,surname,dob,nationality,url
1,hamilton,44,HAM,Lewis,Hamilton,1985-01-07,British,http://example.com/1
2,senna,\N,SEN,Ayrton,Senna,1960-03-21,Brazilian,http://example.com/2
3,unused,\N,UNU,Never,Raced,1990-01-01,German,http://example.com/3
`,
	"results.csv": `resultId,raceId,driverId,constructorId,number,grid,position,positionText,points,laps
1,10,1,100,44,1,1,1,25,58
2,11,1,100,44,3,R,R,0,12
3,10,2,200,12,2,2,2,18,58
4,11,2,200,12,1,1,1,25,70
5,99,2,200,12,1,1,1,25,70
6,10,2,999,12,1,1,1,25,70
`,
	"races.csv": `raceId,year,round,circuitId,name,date
10,2008,1,1,Australian Grand Prix,2008-03-16
11,1988,2,2,Brazilian Grand Prix,1988-04-03
`,
	"constructors.csv": `constructorId,constructorRef,name,nationality
100,mclaren,McLaren,British
200,mclaren_88,McLaren-Honda,British
`,
	"world_champions.csv": `Driver,Nationality,Titles,Seasons
Lewis Hamilton,British,7,2008
Ayrton Senna,Brazilian,3,1988
`,
}

func writeFixture(t *testing.T, overrides map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range fixtureFiles {
		if o, ok := overrides[name]; ok {
			body = o
		}
		if body == "" {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}
