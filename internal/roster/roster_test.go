package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = Columns{
	ID:     "BUIDL ID",
	Name:   "BUIDL name",
	Track:  "Track",
	Bounty: "Bounties",
}

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidRoster(t *testing.T) {
	path := writeRoster(t, `BUIDL ID,BUIDL name,Track,Bounties
1,Alpha,AI,Best GenAI
2,Beta,"Web, Fintech",
3,Gamma,AI,"Best GenAI, Best .tech"
`)

	teams, err := Load(path, testColumns)
	require.NoError(t, err)
	require.Len(t, teams, 3)

	assert.Equal(t, "1", teams[0].ID)
	assert.Equal(t, "Alpha", teams[0].Name)
	assert.Equal(t, []string{"AI", "Best GenAI"}, teams[0].Categories)

	assert.Equal(t, []string{"Web", "Fintech"}, teams[1].Categories)
	assert.Equal(t, []string{"AI", "Best GenAI", "Best .tech"}, teams[2].Categories)
}

func TestLoad_SkipsNamelessRows(t *testing.T) {
	path := writeRoster(t, `BUIDL ID,BUIDL name,Track,Bounties
1,Alpha,AI,
2,,Web,
3,Gamma,Fintech,
`)

	teams, err := Load(path, testColumns)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Alpha", teams[0].Name)
	assert.Equal(t, "Gamma", teams[1].Name)
}

func TestLoad_DropsPlaceholderLabels(t *testing.T) {
	path := writeRoster(t, `BUIDL ID,BUIDL name,Track,Bounties
1,Alpha,"AI, , n/a",N/A
2,Beta,n/a,
`)

	teams, err := Load(path, testColumns)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, []string{"AI"}, teams[0].Categories)
	assert.Empty(t, teams[1].Categories)
}

func TestLoad_DedupesLabels(t *testing.T) {
	path := writeRoster(t, `BUIDL ID,BUIDL name,Track,Bounties
1,Alpha,"Web, AI, Web","AI, Best GenAI"
`)

	teams, err := Load(path, testColumns)
	require.NoError(t, err)
	assert.Equal(t, []string{"Web", "AI", "Best GenAI"}, teams[0].Categories)
}

func TestLoad_GeneratesMissingIDs(t *testing.T) {
	path := writeRoster(t, `BUIDL ID,BUIDL name,Track,Bounties
,Alpha,AI,
,Beta,Web,
`)

	teams, err := Load(path, testColumns)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	_, err = uuid.Parse(teams[0].ID)
	assert.NoError(t, err)
	assert.NotEqual(t, teams[0].ID, teams[1].ID)
}

func TestLoad_MissingColumns(t *testing.T) {
	path := writeRoster(t, `BUIDL ID,Team,Track
1,Alpha,AI
`)

	_, err := Load(path, testColumns)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
	assert.Contains(t, err.Error(), "BUIDL name")
	assert.Contains(t, err.Error(), "Bounties")
}

func TestLoad_NoUsableRows(t *testing.T) {
	path := writeRoster(t, `BUIDL ID,BUIDL name,Track,Bounties
1,,AI,
2,,Web,
`)

	_, err := Load(path, testColumns)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid team data")
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeRoster(t, "BUIDL ID,BUIDL name,Track,Bounties\n")

	_, err := Load(path, testColumns)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid team data")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), testColumns)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open roster")
}

func TestRead_CustomColumns(t *testing.T) {
	csv := `id,team,category,sponsor
7,Alpha,AI,Best GenAI
`

	teams, err := Read(strings.NewReader(csv), Columns{
		ID:     "id",
		Name:   "team",
		Track:  "category",
		Bounty: "sponsor",
	})
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "7", teams[0].ID)
	assert.Equal(t, []string{"AI", "Best GenAI"}, teams[0].Categories)
}

func TestLabels_SortedWithCounts(t *testing.T) {
	path := writeRoster(t, `BUIDL ID,BUIDL name,Track,Bounties
1,Alpha,"Web, AI",
2,Beta,AI,Best GenAI
3,Gamma,AI,
`)

	teams, err := Load(path, testColumns)
	require.NoError(t, err)

	labels := Labels(teams)
	require.Len(t, labels, 3)
	assert.Equal(t, LabelCount{Label: "AI", Teams: 3}, labels[0])
	assert.Equal(t, LabelCount{Label: "Best GenAI", Teams: 1}, labels[1])
	assert.Equal(t, LabelCount{Label: "Web", Teams: 1}, labels[2])
}

func TestLabels_NoTeams(t *testing.T) {
	assert.Empty(t, Labels(nil))
}
