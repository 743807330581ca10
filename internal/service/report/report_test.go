package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lagam-golang/internal/storage"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetTasks(ctx context.Context) ([]storage.ProductionTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ProductionTask), args.Error(1)
}

func (m *MockRepository) GetLagams(ctx context.Context) ([]storage.Lagam, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Lagam), args.Error(1)
}

func (m *MockRepository) GetUsers(ctx context.Context) ([]storage.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.User), args.Error(1)
}

func (m *MockRepository) GetTeams(ctx context.Context) ([]storage.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Team), args.Error(1)
}

func testLagam() storage.Lagam {
	return storage.Lagam{
		LagamID: "LGM-1700000000000",
		ProductInfo: storage.ProductInfo{
			ProductName:   "Polo shirt",
			Sizes:         []storage.SizeQuantity{{Size: "S", Quantity: 200}},
			TotalQuantity: 200,
		},
		ProductionBlueprint: []storage.ProductionBlueprintSection{
			{
				SectionName: "Sewing",
				PlannedOperations: []storage.Operation{
					{Descripcion: "unir hombros", Maquina: "overlock", Tiempo: 3},
					{Descripcion: "pegar cuello", Maquina: "plana", Tiempo: 2},
				},
			},
		},
	}
}

func testTask(id, memberID string, status storage.TaskStatus, produced int, date, slot string) storage.ProductionTask {
	return storage.ProductionTask{
		ID:               id,
		LagamID:          "LGM-1700000000000",
		SectionName:      "Sewing",
		TeamMemberID:     memberID,
		Date:             date,
		TimeSlot:         slot,
		Status:           status,
		QuantityProduced: produced,
	}
}

func june(day int) string {
	return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func TestAggregate_OperatorMetrics(t *testing.T) {
	users := []storage.User{
		{ID: "u1", Name: "Ana", Role: storage.RoleOperator},
		{ID: "u2", Name: "Luis", Role: storage.RoleOperator},
	}
	// Section std time is 5 min/unit. Ana: 20 units in a 120 min slot.
	tasks := []storage.ProductionTask{
		testTask("TSK-1", "u1", storage.TaskCompleted, 20, june(10), "7:30 to 9:30"),
	}

	got := Aggregate(tasks, []storage.Lagam{testLagam()}, users, nil,
		Month(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)), Scope{})

	assert.Len(t, got.Operators, 2)

	ana := got.Operators[0]
	assert.Equal(t, "u1", ana.ID)
	assert.Equal(t, 20, ana.UnitsProduced)
	assert.Equal(t, 100.0, ana.StdTimeEarned)
	assert.Equal(t, 120.0, ana.ActualTime)
	assert.InDelta(t, 83.333, ana.Performance, 0.001)
	assert.Equal(t, ana.Performance, ana.OLE)

	// Luis had no tasks but is still pre-seeded at zero.
	luis := got.Operators[1]
	assert.Equal(t, "u2", luis.ID)
	assert.Equal(t, 0, luis.UnitsProduced)
	assert.Equal(t, 0.0, luis.Performance)
}

func TestAggregate_OLEAlwaysEqualsPerformance(t *testing.T) {
	users := []storage.User{
		{ID: "u1", Name: "Ana", Role: storage.RoleOperator},
		{ID: "u2", Name: "Luis", Role: storage.RoleOperator},
		{ID: "m1", Name: "Marta", Role: storage.RoleManager},
	}
	teams := []storage.Team{{ID: "t1", Name: "Linea 1", MemberIDs: []string{"u1", "u2", "m1"}}}
	tasks := []storage.ProductionTask{
		testTask("TSK-1", "u1", storage.TaskCompleted, 20, june(10), "7:30 to 9:30"),
		testTask("TSK-2", "u2", storage.TaskInProgress, 7, june(11), "Overtime 1"),
	}

	got := Aggregate(tasks, []storage.Lagam{testLagam()}, users, teams,
		Month(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)), Scope{})

	for _, op := range got.Operators {
		assert.Equal(t, op.Performance, op.OLE, op.Name)
	}
	for _, team := range got.Teams {
		assert.Equal(t, team.Performance, team.OLE, team.Name)
	}
}

func TestAggregate_ManagerInheritsTeamMetrics(t *testing.T) {
	users := []storage.User{
		{ID: "u1", Name: "Ana", Role: storage.RoleOperator},
		{ID: "m1", Name: "Marta", Role: storage.RoleManager},
		{ID: "s1", Name: "Sergio", Role: storage.RoleSupervisor},
	}
	teams := []storage.Team{{ID: "t1", Name: "Linea 1", MemberIDs: []string{"u1", "m1"}}}
	tasks := []storage.ProductionTask{
		testTask("TSK-1", "u1", storage.TaskCompleted, 20, june(10), "7:30 to 9:30"),
		// Marta also has a task on record; her personal history must
		// not surface in the report.
		testTask("TSK-2", "m1", storage.TaskCompleted, 5, june(10), "Overtime 1"),
	}

	got := Aggregate(tasks, []storage.Lagam{testLagam()}, users, teams,
		Month(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)), Scope{})

	byID := make(map[string]OperatorPerformance)
	for _, op := range got.Operators {
		byID[op.ID] = op
	}
	team := got.Teams[0]

	// Team rollup counts operators only, never Marta's own numbers.
	assert.Equal(t, 20, team.UnitsProduced)

	marta := byID["m1"]
	assert.Equal(t, team.Performance, marta.Performance)
	assert.Equal(t, team.OLE, marta.OLE)
	assert.Empty(t, marta.Tasks)

	// A supervisor with no team gets all-zero metrics.
	sergio := byID["s1"]
	assert.Equal(t, 0.0, sergio.Performance)
	assert.Equal(t, 0.0, sergio.OLE)
	assert.Equal(t, 0, sergio.UnitsProduced)
	assert.Empty(t, sergio.Tasks)
}

func TestAggregate_CompletedTaskCreditsReportedOutputOnly(t *testing.T) {
	// Regression pin: productivity crediting reads quantityProduced
	// directly, so a Completed task that never reported output earns
	// nothing here, even though allocation accounting would count its
	// full plan.
	users := []storage.User{{ID: "u1", Name: "Ana", Role: storage.RoleOperator}}
	task := testTask("TSK-1", "u1", storage.TaskCompleted, 0, june(10), "7:30 to 9:30")
	task.SizeQuantities = []storage.SizeQuantity{{Size: "S", Quantity: 50}}
	task.Quantity = 50

	got := Aggregate([]storage.ProductionTask{task}, []storage.Lagam{testLagam()}, users, nil,
		Month(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)), Scope{})

	ana := got.Operators[0]
	assert.Equal(t, 0, ana.UnitsProduced)
	assert.Equal(t, 0.0, ana.StdTimeEarned)
	assert.Equal(t, 120.0, ana.ActualTime)
	assert.Equal(t, 0.0, ana.Performance)
}

func TestAggregate_ActualTimeOverridesSlot(t *testing.T) {
	users := []storage.User{{ID: "u1", Name: "Ana", Role: storage.RoleOperator}}
	actual := 90.0
	task := testTask("TSK-1", "u1", storage.TaskCompleted, 18, june(10), "7:30 to 9:30")
	task.ActualTime = &actual

	got := Aggregate([]storage.ProductionTask{task}, []storage.Lagam{testLagam()}, users, nil,
		Month(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)), Scope{})

	assert.Equal(t, 90.0, got.Operators[0].ActualTime)
	assert.InDelta(t, 100.0, got.Operators[0].Performance, 0.001)
}

func TestAggregate_UnresolvableLagamSkipped(t *testing.T) {
	users := []storage.User{{ID: "u1", Name: "Ana", Role: storage.RoleOperator}}
	task := testTask("TSK-1", "u1", storage.TaskCompleted, 20, june(10), "7:30 to 9:30")
	task.LagamID = "LGM-deleted"

	got := Aggregate([]storage.ProductionTask{task}, []storage.Lagam{testLagam()}, users, nil,
		Month(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)), Scope{})

	assert.Equal(t, 0, got.Operators[0].UnitsProduced)
	assert.Equal(t, 0.0, got.Operators[0].ActualTime)
}

func TestAggregate_DateFilters(t *testing.T) {
	users := []storage.User{{ID: "u1", Name: "Ana", Role: storage.RoleOperator}}
	tasks := []storage.ProductionTask{
		testTask("TSK-1", "u1", storage.TaskCompleted, 10, june(10), "Overtime 1"),
		testTask("TSK-2", "u1", storage.TaskCompleted, 10, june(20), "Overtime 1"),
		testTask("TSK-3", "u1", storage.TaskCompleted, 10, "2025-07-01", "Overtime 1"),
	}
	lagams := []storage.Lagam{testLagam()}

	day := Aggregate(tasks, lagams, users, nil, Day(time.Date(2025, time.June, 10, 15, 30, 0, 0, time.UTC)), Scope{})
	assert.Equal(t, 10, day.Operators[0].UnitsProduced)

	month := Aggregate(tasks, lagams, users, nil, Month(time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)), Scope{})
	assert.Equal(t, 20, month.Operators[0].UnitsProduced)

	full := Aggregate(tasks, lagams, users, nil,
		Range(time.Date(2025, time.June, 10, 23, 0, 0, 0, time.UTC), time.Date(2025, time.July, 1, 1, 0, 0, 0, time.UTC)), Scope{})
	assert.Equal(t, 30, full.Operators[0].UnitsProduced)
}

func TestAggregate_CancelledAndPendingIgnored(t *testing.T) {
	users := []storage.User{{ID: "u1", Name: "Ana", Role: storage.RoleOperator}}
	tasks := []storage.ProductionTask{
		testTask("TSK-1", "u1", storage.TaskCancelled, 10, june(10), "Overtime 1"),
		testTask("TSK-2", "u1", storage.TaskPending, 10, june(10), "Overtime 1"),
	}

	got := Aggregate(tasks, []storage.Lagam{testLagam()}, users, nil,
		Month(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)), Scope{})

	assert.Equal(t, 0, got.Operators[0].UnitsProduced)
}

func TestAggregate_SortedByOLEDescending(t *testing.T) {
	users := []storage.User{
		{ID: "u1", Name: "Ana", Role: storage.RoleOperator},
		{ID: "u2", Name: "Luis", Role: storage.RoleOperator},
	}
	teams := []storage.Team{
		{ID: "t1", Name: "Linea 1", MemberIDs: []string{"u1"}},
		{ID: "t2", Name: "Linea 2", MemberIDs: []string{"u2"}},
	}
	tasks := []storage.ProductionTask{
		testTask("TSK-1", "u1", storage.TaskCompleted, 6, june(10), "Overtime 1"),
		testTask("TSK-2", "u2", storage.TaskCompleted, 12, june(10), "Overtime 1"),
	}

	got := Aggregate(tasks, []storage.Lagam{testLagam()}, users, teams,
		Month(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)), Scope{})

	assert.Equal(t, "u2", got.Operators[0].ID)
	assert.Equal(t, "u1", got.Operators[1].ID)
	assert.Equal(t, "t2", got.Teams[0].ID)
	assert.Equal(t, "t1", got.Teams[1].ID)
}

func TestAggregate_TeamScope(t *testing.T) {
	users := []storage.User{
		{ID: "u1", Name: "Ana", Role: storage.RoleOperator},
		{ID: "u2", Name: "Luis", Role: storage.RoleOperator},
	}
	teams := []storage.Team{
		{ID: "t1", Name: "Linea 1", MemberIDs: []string{"u1"}},
		{ID: "t2", Name: "Linea 2", MemberIDs: []string{"u2"}},
	}

	got := Aggregate(nil, []storage.Lagam{testLagam()}, users, teams,
		Month(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)), Scope{TeamID: "t1"})

	assert.Len(t, got.Operators, 1)
	assert.Equal(t, "u1", got.Operators[0].ID)
	assert.Len(t, got.Teams, 1)
	assert.Equal(t, "t1", got.Teams[0].ID)
}

func TestPerformanceReport_LoadsSnapshot(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetTasks", mock.Anything).Return([]storage.ProductionTask{}, nil)
	mockRepo.On("GetLagams", mock.Anything).Return([]storage.Lagam{}, nil)
	mockRepo.On("GetUsers", mock.Anything).Return([]storage.User{{ID: "u1", Name: "Ana", Role: storage.RoleOperator}}, nil)
	mockRepo.On("GetTeams", mock.Anything).Return([]storage.Team{}, nil)

	service := NewService(mockRepo)
	got, err := service.PerformanceReport(context.Background(), Month(time.Now()), Scope{})

	assert.NoError(t, err)
	assert.Len(t, got.Operators, 1)
	mockRepo.AssertExpectations(t)
}

func TestPerformanceReport_StorageError(t *testing.T) {
	mockRepo := new(MockRepository)
	storageErr := errors.New("disk gone")
	mockRepo.On("GetTasks", mock.Anything).Return(nil, storageErr)
	mockRepo.On("GetLagams", mock.Anything).Return([]storage.Lagam{}, nil)
	mockRepo.On("GetUsers", mock.Anything).Return([]storage.User{}, nil)
	mockRepo.On("GetTeams", mock.Anything).Return([]storage.Team{}, nil)

	service := NewService(mockRepo)
	_, err := service.PerformanceReport(context.Background(), Month(time.Now()), Scope{})

	assert.ErrorIs(t, err, storageErr)
}
