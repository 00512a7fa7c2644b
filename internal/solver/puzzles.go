package solver

import (
	"context"

	"github.com/yildizm/aoc2018/internal/boxid"
	"github.com/yildizm/aoc2018/internal/claims"
	"github.com/yildizm/aoc2018/internal/frequency"
	"github.com/yildizm/aoc2018/internal/guards"
	"github.com/yildizm/aoc2018/internal/polymer"
)

// Default returns a registry holding every solved puzzle
func Default() *Registry {
	r := NewRegistry()

	r.MustRegister(Puzzle{Day: 1, Part: 1, Solve: func(_ context.Context, path string) (any, error) {
		changes, err := frequency.Load(path)
		if err != nil {
			return nil, err
		}
		return frequency.Sum(changes), nil
	}})
	r.MustRegister(Puzzle{Day: 1, Part: 2, Solve: func(ctx context.Context, path string) (any, error) {
		changes, err := frequency.Load(path)
		if err != nil {
			return nil, err
		}
		return frequency.FirstRepeat(ctx, changes)
	}})

	r.MustRegister(Puzzle{Day: 2, Part: 1, Solve: func(_ context.Context, path string) (any, error) {
		ids, err := boxid.Load(path)
		if err != nil {
			return nil, err
		}
		return boxid.Checksum(ids), nil
	}})
	r.MustRegister(Puzzle{Day: 2, Part: 2, Solve: func(_ context.Context, path string) (any, error) {
		ids, err := boxid.Load(path)
		if err != nil {
			return nil, err
		}
		return boxid.CommonLetters(ids)
	}})

	r.MustRegister(Puzzle{Day: 3, Part: 1, Solve: func(_ context.Context, path string) (any, error) {
		cs, err := claims.Load(path)
		if err != nil {
			return nil, err
		}
		return claims.TotalOverlapArea(cs), nil
	}})
	r.MustRegister(Puzzle{Day: 3, Part: 2, Solve: func(_ context.Context, path string) (any, error) {
		cs, err := claims.Load(path)
		if err != nil {
			return nil, err
		}
		return claims.LoneClaim(cs)
	}})

	r.MustRegister(Puzzle{Day: 4, Part: 1, Solve: func(_ context.Context, path string) (any, error) {
		schedule, err := loadSchedule(path)
		if err != nil {
			return nil, err
		}
		answer, err := schedule.BusiestGuard()
		if err != nil {
			return nil, err
		}
		return answer.Product(), nil
	}})
	r.MustRegister(Puzzle{Day: 4, Part: 2, Solve: func(_ context.Context, path string) (any, error) {
		schedule, err := loadSchedule(path)
		if err != nil {
			return nil, err
		}
		answer, err := schedule.MostConsistentMinute()
		if err != nil {
			return nil, err
		}
		return answer.Product(), nil
	}})

	r.MustRegister(Puzzle{Day: 5, Part: 1, Solve: func(_ context.Context, path string) (any, error) {
		units, err := polymer.Load(path)
		if err != nil {
			return nil, err
		}
		return polymer.Reduce(units), nil
	}})
	r.MustRegister(Puzzle{Day: 5, Part: 2, Solve: func(_ context.Context, path string) (any, error) {
		units, err := polymer.Load(path)
		if err != nil {
			return nil, err
		}
		return polymer.ShortestWithout(units), nil
	}})

	return r
}

func loadSchedule(path string) (*guards.Schedule, error) {
	events, err := guards.Load(path)
	if err != nil {
		return nil, err
	}
	return guards.Analyze(events)
}
