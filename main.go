// The Reddit Mastermind plans synthetic weekly content calendars: which
// persona posts which topic into which subreddit, when, and what everyone
// says. It serves an HTTP API and optionally auto-plans the coming week on a
// cron schedule.
package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/calendar"
	"github.com/krystalg80/The-Reddit-Mastermind/internal/config"
	"github.com/krystalg80/The-Reddit-Mastermind/internal/generator"
	"github.com/krystalg80/The-Reddit-Mastermind/internal/scheduler"
	"github.com/krystalg80/The-Reddit-Mastermind/internal/server"
	"github.com/krystalg80/The-Reddit-Mastermind/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	st, err := store.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	provider := buildProvider(cfg)

	srv := server.New(st, provider, cfg.Planner.DefaultPostsPerWeek)
	httpServer := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: srv.Router(),
	}

	sched, err := scheduler.New(cfg.Planner.Timezone)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	if err := sched.AddWeeklyPlanJob(cfg.Planner.AutoplanSchedule, autoplanJob(st, provider, cfg)); err != nil {
		log.Fatalf("Failed to schedule auto-plan: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Listening on %s", cfg.Server.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		sched.Start()
		<-ctx.Done()
		<-sched.Stop().Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Shutdown complete")
}

// buildProvider constructs the LLM provider from config, or nil when text
// generation is disabled. The rate gate is deliberately process-wide.
func buildProvider(cfg *config.Config) generator.Provider {
	switch cfg.LLM.Provider {
	case config.ProviderAnthropic:
		if cfg.LLM.APIKey == "" {
			log.Println("LLM provider is anthropic but no API key configured; using templates only")
			return nil
		}
		gate := generator.NewGate(time.Duration(cfg.LLM.MinCallIntervalMS) * time.Millisecond)
		return generator.NewAnthropicProvider(cfg.LLM.APIKey, cfg.LLM.Model, gate)
	default:
		log.Println("Text generation disabled; calendars use the template path")
		return nil
	}
}

// autoplanJob generates next week's calendar for every company that has a
// workable roster. Companies that fail validation are skipped, not fatal.
func autoplanJob(st *store.Store, provider generator.Provider, cfg *config.Config) scheduler.Job {
	return func(ctx context.Context) error {
		companies, err := st.ListCompanies()
		if err != nil {
			return err
		}

		for _, company := range companies {
			personas, err := st.ListPersonas(company.ID)
			if err != nil {
				return err
			}
			subreddits, err := st.ListSubreddits(company.ID)
			if err != nil {
				return err
			}
			topics, err := st.ListTopics(company.ID)
			if err != nil {
				return err
			}

			gen := calendar.New(provider, rand.New(rand.NewSource(time.Now().UnixNano())))
			result, err := gen.Generate(ctx, calendar.Request{
				Company:      company,
				Personas:     personas,
				Subreddits:   subreddits,
				Topics:       topics,
				PostsPerWeek: cfg.Planner.DefaultPostsPerWeek,
				WeekAnchor:   time.Now().AddDate(0, 0, 7),
			})
			if err != nil {
				var verr *calendar.ValidationError
				if errors.As(err, &verr) {
					log.Printf("[autoplan] Skipping %s: %v", company.Name, verr)
					continue
				}
				return err
			}

			if err := st.SaveCalendar(&result.Calendar, result.Posts); err != nil {
				return err
			}
			log.Printf("[autoplan] Planned week of %s for %s: %d posts, score %.1f",
				result.Calendar.WeekStart.Format("2006-01-02"), company.Name,
				len(result.Posts), result.QualityScore)
		}
		return nil
	}
}
