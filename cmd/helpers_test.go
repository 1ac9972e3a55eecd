package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var cmdFixture = map[string]string{
	"drivers.csv": `driverId,forename,surname,dob,nationality
1,Lewis,Hamilton,1985-01-07,British
2,Max,Verstappen,1997-09-30,Dutch
3,Nico,Rosberg,1985-06-27,German
`,
	"races.csv": `raceId,year,name
10,2020,Monaco Grand Prix
11,2020,British Grand Prix
12,2021,Monaco Grand Prix
`,
	"constructors.csv": `constructorId,name
100,Mercedes
200,Red Bull
`,
	"results.csv": `resultId,raceId,driverId,constructorId,grid,position,points,laps
1,10,1,100,1,1,25,78
2,11,1,100,2,2,18,52
3,12,1,100,1,1,25,78
4,10,2,200,2,2,18,78
5,11,2,200,1,1,25,52
6,12,2,200,3,\N,0,40
`,
	"world_champions.csv": `Driver,Nationality,Titles
Lewis Hamilton,British,7
Nico Rosberg,German,1
`,
}

// setupWorkspace writes the fixture into a temp data dir, writes a
// config.yaml pointing at it and changes into the temp dir.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	for name, body := range cmdFixture {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(body), 0o644))
	}

	conf := "data:\n  dir: " + dataDir + "\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(conf), 0o644))

	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	return dir
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}
