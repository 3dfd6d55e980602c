package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/roadmap/internal/planner"
)

const chainScenario = `
targetCourseId: 3
targetTerm: Spring
targetYear: 2027
courses:
  - {id: 1, dept: MATH, number: 20A, title: Calculus I, unitsMin: 4, unitsMax: 4, difficulty: 4, workload: 4}
  - {id: 2, dept: MATH, number: 20B, title: Calculus II, unitsMin: 4, unitsMax: 4, difficulty: 5, workload: 5}
  - {id: 3, dept: MATH, number: 20C, title: Calculus III, unitsMin: 4, unitsMax: 4, difficulty: 5, workload: 5}
edges:
  - {courseId: 2, prereqCourseId: 1}
  - {courseId: 3, prereqCourseId: 2}
`

const cycleScenario = `{
  "targetCourseId": 1, "targetTerm": "Fall", "targetYear": 2026,
  "courses": [
    {"id": 1, "dept": "MATH", "number": "1", "unitsMin": 4, "unitsMax": 4, "difficulty": 5, "workload": 5},
    {"id": 2, "dept": "MATH", "number": "2", "unitsMin": 4, "unitsMax": 4, "difficulty": 5, "workload": 5}
  ],
  "edges": [{"courseId": 1, "prereqCourseId": 2}, {"courseId": 2, "prereqCourseId": 1}]
}`

func writeScenario(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	jsonOutput, configPath, planStrict = false, "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPlanCommand(t *testing.T) {
	path := writeScenario(t, "chain.yaml", chainScenario)

	out, err := run(t, "plan", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "▸ Fall 2027")
	assert.Contains(t, out, "▸ Winter 2027")
	assert.Contains(t, out, "▸ Spring 2027")
	assert.Contains(t, out, "MATH 20C")
	assert.Contains(t, out, "3 quarters, 12 units")
	assert.NotContains(t, out, "Unscheduled")
}

func TestPlanCommandJSON(t *testing.T) {
	path := writeScenario(t, "chain.yaml", chainScenario)

	out, err := run(t, "plan", "-f", path, "--json")
	require.NoError(t, err)

	var res planner.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Plan, 3)
	assert.Equal(t, "Spring", res.Plan[2].Term)
	assert.Equal(t, 2027, res.Plan[2].Year)
	assert.Equal(t, int64(3), res.Plan[2].Courses[0].ID)
}

func TestPlanCommandStrict(t *testing.T) {
	path := writeScenario(t, "cycle.json", cycleScenario)

	out, err := run(t, "plan", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Circular dependency")
	assert.Contains(t, out, "Unscheduled: MATH 1, MATH 2")

	_, err = run(t, "plan", "-f", path, "--strict")
	assert.ErrorIs(t, err, errBlocked)
}

func TestPlanCommandStdin(t *testing.T) {
	rootCmd.SetIn(strings.NewReader(chainScenario))
	defer rootCmd.SetIn(nil)

	out, err := run(t, "plan", "-f", "-", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"plan"`)
}

func TestPlanCommandErrors(t *testing.T) {
	_, err := run(t, "plan", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read scenario")

	path := writeScenario(t, "broken.yaml", "courses: [")
	_, err = run(t, "plan", "-f", path)
	assert.ErrorContains(t, err, "failed to parse scenario")
}

func TestPlanCommandConfig(t *testing.T) {
	path := writeScenario(t, "chain.yaml", chainScenario)
	cfg := writeScenario(t, "config.yaml", "planner:\n  max_units_per_quarter: 4\n  max_courses_per_quarter: 1\n")

	out, err := run(t, "plan", "-f", path, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "3 quarters")
}

func TestValidateCommand(t *testing.T) {
	ok := writeScenario(t, "chain.yaml", chainScenario)
	out, err := run(t, "validate", "-f", ok)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (3 courses, 2 edges)")

	cyclic := writeScenario(t, "cycle.json", cycleScenario)
	out, err = run(t, "validate", "-f", cyclic, "--json")
	require.Error(t, err)

	var report validationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Valid)
	assert.Equal(t, []string{"prerequisite cycle through MATH 1, MATH 2"}, report.Issues)
}

func TestValidateScenarioReportsInputErrors(t *testing.T) {
	report := validateScenario(planner.Input{
		TargetID: 1, TargetTerm: "Summer", TargetYear: 2026,
		Courses: []planner.Course{{ID: 1, Dept: "MATH", Number: "1", UnitsMin: 4, UnitsMax: 2, Difficulty: 5, Workload: 5}},
		Edges:   []planner.PrereqEdge{{CourseID: 1, PrereqID: 9}},
	})
	assert.False(t, report.Valid)
	assert.Len(t, report.Issues, 3)
}

func TestRootCommandVersion(t *testing.T) {
	SetVersion("1.2.3")
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}
