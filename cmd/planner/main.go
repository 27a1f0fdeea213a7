package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"goal-planner/config"
	"goal-planner/internal/goal"
	"goal-planner/internal/goal/repository/memory"
	"goal-planner/internal/goal/usecase"
	"goal-planner/internal/model"
	"goal-planner/internal/session"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Infof(ctx, "Starting goal planner, environment: %s", cfg.Environment.Name)

	// 3. Date parser. The driver may fall back to UTC; the schedule builder
	// itself never does.
	timezone := cfg.Planner.Timezone
	dates, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		dates, _ = datemath.NewParser(timezone)
	}

	// 4. Session registry and goal use case
	sessions, err := session.NewManager(logger, dates, session.Config{
		Capacity: cfg.Session.Capacity,
		TTL:      time.Duration(cfg.Session.TTLMinutes) * time.Minute,
	}, nil)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create session manager: %v", err)
	}

	repo := memory.New()
	goalUC := usecase.New(logger, repo, nil, nil)

	// 5. Interview loop on stdin
	sc := model.Scope{UserID: "local", Username: os.Getenv("USER")}
	id, question := sessions.Start(ctx, sc)

	in := bufio.NewScanner(os.Stdin)
	fmt.Println("Let's plan a goal. Answer each question (Ctrl-D to quit).")
	for {
		fmt.Printf("\n> %s\n", question)
		if !in.Scan() {
			return
		}

		res, err := sessions.Answer(ctx, id, in.Text())
		if err != nil {
			logger.Errorf(ctx, "Interview failed: %v", err)
			return
		}
		if !res.Accepted {
			fmt.Printf("  %s\n", res.ValidationError)
			question = res.NextQuestion
			continue
		}
		if !res.Complete {
			question = res.NextQuestion
			continue
		}
		break
	}

	// 6. Advisory realism check
	report, err := sessions.Realism(ctx, id, cfg.Planner.MinSessions)
	if err != nil {
		logger.Errorf(ctx, "Realism check failed: %v", err)
		return
	}
	if !report.Realistic {
		fmt.Printf("\nHeads up: %s\n", report.Advice)
	}

	// 7. Build and store the plan
	fields, err := sessions.Fields(ctx, id)
	if err != nil {
		logger.Errorf(ctx, "Fetching fields failed: %v", err)
		return
	}
	if fields.TimeOfDay == "" {
		fields.TimeOfDay = cfg.Planner.DefaultTimeOfDay
	}

	out, err := goalUC.CreatePlan(ctx, sc, goal.CreatePlanInput{
		Fields:   fields,
		Timezone: timezone,
	})
	if err != nil {
		logger.Errorf(ctx, "Creating plan failed: %v", err)
		return
	}
	sessions.End(ctx, id)

	fmt.Printf("\nGoal %q: %d session(s) through %s\n",
		out.Goal.Title, out.SlotCount, out.Goal.TargetDate.Format("2006-01-02"))
	for _, slot := range out.Slots {
		fmt.Printf("  %s (%d/%d) - %s, %d min\n",
			slot.Title, slot.Seq+1, out.SlotCount,
			slot.DueAt.Format("Mon 2006-01-02 15:04 MST"), slot.DurationMinutes)
	}
}
