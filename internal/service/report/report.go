package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"lagam-golang/internal/service/production"
	"lagam-golang/internal/storage"
)

type Repository interface {
	GetTasks(ctx context.Context) ([]storage.ProductionTask, error)
	GetLagams(ctx context.Context) ([]storage.Lagam, error)
	GetUsers(ctx context.Context) ([]storage.User, error)
	GetTeams(ctx context.Context) ([]storage.Team, error)
}

type Service struct {
	storage Repository
}

func NewService(storage Repository) *Service {
	return &Service{storage: storage}
}

// DateFilter is an inclusive day-granular interval. Callers resolve
// day/month/range parameters into one before invoking the aggregation.
type DateFilter struct {
	From time.Time
	To   time.Time
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Day filters to a single calendar day.
func Day(t time.Time) DateFilter {
	d := dayStart(t)
	return DateFilter{From: d, To: d}
}

// Month filters to the calendar month containing t.
func Month(t time.Time) DateFilter {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return DateFilter{From: first, To: first.AddDate(0, 1, -1)}
}

// Range filters to an arbitrary inclusive interval, normalized to day
// boundaries.
func Range(from, to time.Time) DateFilter {
	return DateFilter{From: dayStart(from), To: dayStart(to)}
}

func (f DateFilter) contains(date string) bool {
	d, err := time.ParseInLocation("2006-01-02", date, f.From.Location())
	if err != nil {
		return false
	}
	return !d.Before(f.From) && !d.After(f.To)
}

// Scope optionally narrows the aggregation to one team or operator.
type Scope struct {
	TeamID     string
	OperatorID string
}

type OperatorPerformance struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	UnitsProduced int                      `json:"unitsProduced"`
	StdTimeEarned float64                  `json:"stdTimeEarned"`
	ActualTime    float64                  `json:"actualTime"`
	Performance   float64                  `json:"performance"`
	OLE           float64                  `json:"ole"`
	AvatarURL     string                   `json:"avatarUrl,omitempty"`
	Tasks         []storage.ProductionTask `json:"tasks"`
}

type TeamPerformance struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	MemberIDs     []string `json:"memberIds"`
	UnitsProduced int      `json:"unitsProduced"`
	StdTimeEarned float64  `json:"stdTimeEarned"`
	ActualTime    float64  `json:"actualTime"`
	Performance   float64  `json:"performance"`
	OLE           float64  `json:"ole"`
}

type PerformanceReport struct {
	Operators []OperatorPerformance `json:"operators"`
	Teams     []TeamPerformance     `json:"teams"`
}

// PerformanceReport loads a fresh snapshot of every collection and
// aggregates it for the requested filter and scope.
func (s *Service) PerformanceReport(ctx context.Context, filter DateFilter, scope Scope) (*PerformanceReport, error) {
	const op = "service.report.PerformanceReport"

	var (
		tasks  []storage.ProductionTask
		lagams []storage.Lagam
		users  []storage.User
		teams  []storage.Team
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.storage.GetTasks(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		lagams, err = s.storage.GetLagams(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.storage.GetUsers(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = s.storage.GetTeams(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := Aggregate(tasks, lagams, users, teams, filter, scope)
	return &result, nil
}

// Aggregate computes per-operator and per-team productivity metrics.
// performance = stdTimeEarned / actualTime * 100; ole equals
// performance exactly (availability and quality factors are fixed at
// 100%). Tasks with an unresolvable lagam or section contribute
// nothing. Pure over its inputs.
func Aggregate(tasks []storage.ProductionTask, lagams []storage.Lagam, users []storage.User, teams []storage.Team, filter DateFilter, scope Scope) PerformanceReport {
	lagamByID := make(map[string]storage.Lagam, len(lagams))
	for _, l := range lagams {
		lagamByID[l.LagamID] = l
	}

	scopedTeam, hasScopedTeam := storage.Team{}, false
	if scope.TeamID != "" {
		for _, t := range teams {
			if t.ID == scope.TeamID {
				scopedTeam, hasScopedTeam = t, true
				break
			}
		}
	}

	inScope := func(u storage.User) bool {
		if scope.OperatorID != "" && u.ID != scope.OperatorID {
			return false
		}
		if scope.TeamID != "" {
			return hasScopedTeam && scopedTeam.HasMember(u.ID)
		}
		return true
	}

	// Every user in scope appears in the output, with or without tasks.
	acc := make(map[string]*OperatorPerformance)
	roles := make(map[string]storage.Role, len(users))
	order := make([]string, 0, len(users))
	for _, u := range users {
		roles[u.ID] = u.Role
		if !inScope(u) {
			continue
		}
		acc[u.ID] = &OperatorPerformance{
			ID:        u.ID,
			Name:      u.Name,
			AvatarURL: u.AvatarURL,
			Tasks:     []storage.ProductionTask{},
		}
		order = append(order, u.ID)
	}

	for _, task := range tasks {
		if task.Status != storage.TaskCompleted && task.Status != storage.TaskInProgress {
			continue
		}
		if !filter.contains(task.Date) {
			continue
		}
		member, ok := acc[task.TeamMemberID]
		if !ok {
			continue
		}
		lagam, ok := lagamByID[task.LagamID]
		if !ok {
			continue
		}
		section, ok := lagam.Section(task.SectionName)
		if !ok {
			continue
		}

		// Productivity crediting counts reported output only, unlike the
		// allocation accounting in production.ReconcileSection.
		quantity := task.QuantityProduced
		stdTime := float64(quantity) * production.SectionStandardTime(section)
		actual := production.SlotDuration(task.TimeSlot)
		if task.ActualTime != nil {
			actual = *task.ActualTime
		}

		member.UnitsProduced += quantity
		member.StdTimeEarned += stdTime
		member.ActualTime += actual
		member.Tasks = append(member.Tasks, task)
	}

	for _, member := range acc {
		member.Performance = ratioPercent(member.StdTimeEarned, member.ActualTime)
		member.OLE = member.Performance
	}

	teamResults := make([]TeamPerformance, 0, len(teams))
	teamByMember := make(map[string]*TeamPerformance)
	for _, team := range teams {
		if scope.TeamID != "" && team.ID != scope.TeamID {
			continue
		}
		tp := TeamPerformance{
			ID:        team.ID,
			Name:      team.Name,
			MemberIDs: append([]string{}, team.MemberIDs...),
		}
		for _, memberID := range team.MemberIDs {
			if roles[memberID].Leads() {
				continue
			}
			member, ok := acc[memberID]
			if !ok {
				continue
			}
			tp.UnitsProduced += member.UnitsProduced
			tp.StdTimeEarned += member.StdTimeEarned
			tp.ActualTime += member.ActualTime
		}
		tp.Performance = ratioPercent(tp.StdTimeEarned, tp.ActualTime)
		tp.OLE = tp.Performance
		teamResults = append(teamResults, tp)
		for _, memberID := range team.MemberIDs {
			if _, taken := teamByMember[memberID]; !taken {
				teamByMember[memberID] = &teamResults[len(teamResults)-1]
			}
		}
	}

	// Managers and supervisors carry their team's numbers, not their
	// own task history.
	for _, member := range acc {
		if !roles[member.ID].Leads() {
			continue
		}
		member.Tasks = []storage.ProductionTask{}
		if team, ok := teamByMember[member.ID]; ok {
			member.Performance = team.Performance
			member.OLE = team.OLE
		} else {
			*member = OperatorPerformance{
				ID:        member.ID,
				Name:      member.Name,
				AvatarURL: member.AvatarURL,
				Tasks:     []storage.ProductionTask{},
			}
		}
	}

	operators := make([]OperatorPerformance, 0, len(order))
	for _, id := range order {
		operators = append(operators, *acc[id])
	}
	sort.SliceStable(operators, func(i, j int) bool {
		return operators[i].OLE > operators[j].OLE
	})
	sort.SliceStable(teamResults, func(i, j int) bool {
		return teamResults[i].OLE > teamResults[j].OLE
	})

	return PerformanceReport{Operators: operators, Teams: teamResults}
}

func ratioPercent(earned, actual float64) float64 {
	if actual <= 0 {
		return 0
	}
	return earned / actual * 100
}
