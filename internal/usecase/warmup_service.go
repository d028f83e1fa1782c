package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
)

const (
	warmupStatusSuccess = "success"
	warmupStatusFailed  = "failed"

	warmupDataFixtures  = "fixtures"
	warmupDataStandings = "standings"
	warmupDataScorers   = "scorers"
	warmupDataAssists   = "assists"
)

type WarmupInput struct {
	// LeagueIDs defaults to the configured leagues when empty.
	LeagueIDs  []int64
	MaxWorkers int
}

type WarmupResult struct {
	LeagueCount  int                `json:"league_count"`
	TaskCount    int                `json:"task_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	WorkerCount  int                `json:"worker_count"`
	Tasks        []WarmupTaskResult `json:"tasks"`
}

type WarmupTaskResult struct {
	LeagueID   int64  `json:"league_id"`
	Data       string `json:"data"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

type warmupTask struct {
	leagueID int64
	kind     string
}

// WarmupService pre-populates the caches for the configured leagues so
// the first reader after a deploy or an invalidation does not pay the
// provider round trip.
type WarmupService struct {
	matches   *MatchService
	standings *StandingService
	scorers   *ScorerService
	leagueIDs []int64
}

func NewWarmupService(matches *MatchService, standings *StandingService, scorers *ScorerService, leagueIDs []int64) *WarmupService {
	ids := make([]int64, 0, len(leagueIDs))
	for _, id := range leagueIDs {
		if id > 0 {
			ids = append(ids, id)
		}
	}
	return &WarmupService{
		matches:   matches,
		standings: standings,
		scorers:   scorers,
		leagueIDs: ids,
	}
}

func (s *WarmupService) Warmup(ctx context.Context, input WarmupInput) (WarmupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmupService.Warmup")
	defer span.End()

	if s.matches == nil || s.standings == nil || s.scorers == nil {
		return WarmupResult{}, fmt.Errorf("%w: warmup is not fully configured", ErrDependencyUnavailable)
	}

	leagues := input.LeagueIDs
	if len(leagues) == 0 {
		leagues = s.leagueIDs
	}
	targets := make([]int64, 0, len(leagues))
	for _, id := range leagues {
		if id <= 0 {
			return WarmupResult{}, fmt.Errorf("%w: league ids must be greater than zero", ErrInvalidInput)
		}
		targets = append(targets, id)
	}
	if len(targets) == 0 {
		return WarmupResult{}, fmt.Errorf("%w: no leagues to warm up", ErrInvalidInput)
	}

	kinds := []string{warmupDataFixtures, warmupDataStandings, warmupDataScorers, warmupDataAssists}
	tasks := make([]warmupTask, 0, len(targets)*len(kinds))
	for _, leagueID := range targets {
		for _, kind := range kinds {
			tasks = append(tasks, warmupTask{leagueID: leagueID, kind: kind})
		}
	}

	workerCount := normalizeWarmupWorkerCount(input.MaxWorkers, len(tasks))
	result := WarmupResult{
		LeagueCount: len(targets),
		TaskCount:   len(tasks),
		WorkerCount: workerCount,
		Tasks:       make([]WarmupTaskResult, 0, len(tasks)),
	}

	results := make(chan WarmupTaskResult, len(tasks))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := WarmupTaskResult{
				LeagueID: task.leagueID,
				Data:     task.kind,
			}

			records, err := s.runWarmupTask(ctx, task)
			row.Records = records
			row.DurationMs = time.Since(start).Milliseconds()
			if err != nil {
				row.Status = warmupStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			} else {
				row.Status = warmupStatusSuccess
				successCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return WarmupResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].LeagueID != result.Tasks[j].LeagueID {
			return result.Tasks[i].LeagueID < result.Tasks[j].LeagueID
		}
		return result.Tasks[i].Data < result.Tasks[j].Data
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *WarmupService) runWarmupTask(ctx context.Context, task warmupTask) (int, error) {
	switch task.kind {
	case warmupDataFixtures:
		fixtures, err := s.matches.ListByLeague(ctx, task.leagueID)
		if err != nil {
			return 0, err
		}
		return len(fixtures), nil
	case warmupDataStandings:
		table, err := s.standings.TableByLeague(ctx, task.leagueID)
		if err != nil {
			return 0, err
		}
		return len(table), nil
	case warmupDataScorers:
		scorers, err := s.scorers.TopScorersByLeague(ctx, task.leagueID)
		if err != nil {
			return 0, err
		}
		return len(scorers), nil
	case warmupDataAssists:
		assists, err := s.scorers.TopAssistsByLeague(ctx, task.leagueID)
		if err != nil {
			return 0, err
		}
		return len(assists), nil
	default:
		return 0, fmt.Errorf("unsupported warmup data kind %q", task.kind)
	}
}

func normalizeWarmupWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 4
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
