package impl

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"engage/config"
	"engage/internal/domain/entity"
	"engage/internal/domain/repository"
	"engage/internal/usecase"
)

type rateLimiter struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	repo     repository.NotificationHistoryRepository
	policy   entity.RateLimitPolicy
	location *time.Location
	now      func() time.Time
	records  []entity.NotificationRecord
}

// NewRateLimiter creates the rate limiter and loads the persisted notification history
func NewRateLimiter(
	ctx context.Context,
	logger *slog.Logger,
	repo repository.NotificationHistoryRepository,
	cfg *config.Config,
) usecase.RateLimiter {
	return newRateLimiter(ctx, logger, repo, policyFromConfig(cfg), engagementLocation(logger, cfg), time.Now)
}

func newRateLimiter(
	ctx context.Context,
	logger *slog.Logger,
	repo repository.NotificationHistoryRepository,
	policy entity.RateLimitPolicy,
	location *time.Location,
	now func() time.Time,
) *rateLimiter {
	r := &rateLimiter{
		logger:   logger,
		repo:     repo,
		policy:   policy,
		location: location,
		now:      now,
	}
	r.load(ctx)

	return r
}

func policyFromConfig(cfg *config.Config) entity.RateLimitPolicy {
	var limits config.RateLimitConfig
	ignoreHourWindow := false
	if cfg.Engagement != nil {
		limits = cfg.Engagement.RateLimit
		ignoreHourWindow = cfg.Engagement.IgnoreHourWindow
	}
	limits = limits.WithDefaults()

	return entity.RateLimitPolicy{
		DailyLimit:           limits.DailyLimit,
		WeeklyLimit:          limits.WeeklyLimit,
		MonthlyLimit:         limits.MonthlyLimit,
		CooldownHours:        limits.CooldownHours,
		MerchantWeeklyLimit:  limits.MerchantWeeklyLimit,
		MerchantMonthlyLimit: limits.MerchantMonthlyLimit,
		AllowedHourStart:     limits.AllowedHourStart,
		AllowedHourEnd:       limits.AllowedHourEnd,
		IgnoreHourWindow:     ignoreHourWindow,
	}
}

func engagementLocation(logger *slog.Logger, cfg *config.Config) *time.Location {
	if cfg.Engagement == nil || cfg.Engagement.TimeZone == "" {
		return time.Local
	}

	location, err := time.LoadLocation(cfg.Engagement.TimeZone)
	if err != nil {
		logger.Warn("Unknown engagement time zone, using local time",
			slog.String("time_zone", cfg.Engagement.TimeZone),
			slog.Any("error", err),
		)

		return time.Local
	}

	return location
}

// load reads the persisted history once and drops records outside the monthly window
func (r *rateLimiter) load(ctx context.Context) {
	records, err := r.repo.LoadHistory(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrHistoryNotFound) {
			r.logger.Warn("Failed to load notification history, starting empty", slog.Any("error", err))
		}

		return
	}

	cutoff := r.now().Add(-entity.MonthWindow)
	kept := make([]entity.NotificationRecord, 0, len(records))
	for _, record := range records {
		if record.Timestamp.Before(cutoff) {
			continue
		}
		kept = append(kept, record)
	}

	r.records = kept
	r.logger.Debug("Notification history loaded",
		slog.Int("loaded", len(records)),
		slog.Int("kept", len(kept)),
	)
}

// CanNotify evaluates the hour window, the global caps and the merchant caps in that order
func (r *rateLimiter) CanNotify(store *entity.Store) bool {
	now := r.now().In(r.location)

	if !r.policy.InHourWindow(now.Hour()) {
		r.deny(store, "outside allowed hours")

		return false
	}

	r.mu.RLock()
	stats := r.statsLocked(now, store.MerchantID)
	r.mu.RUnlock()

	switch {
	case stats.Today >= r.policy.DailyLimit:
		r.deny(store, "daily limit reached")
	case stats.Week >= r.policy.WeeklyLimit:
		r.deny(store, "weekly limit reached")
	case stats.Month >= r.policy.MonthlyLimit:
		r.deny(store, "monthly limit reached")
	case stats.HoursSinceLast >= 0 && stats.HoursSinceLast < r.policy.CooldownHours:
		r.deny(store, "merchant cooldown active")
	case stats.MerchantWeek >= r.policy.MerchantWeeklyLimit:
		r.deny(store, "merchant weekly limit reached")
	case stats.MerchantMonth >= r.policy.MerchantMonthlyLimit:
		r.deny(store, "merchant monthly limit reached")
	default:
		return true
	}

	return false
}

func (r *rateLimiter) deny(store *entity.Store, reason string) {
	r.logger.Debug("Notification rate limited",
		slog.String("store_id", store.ID),
		slog.String("merchant_id", store.MerchantID),
		slog.String("reason", reason),
	)
}

// RecordNotification appends a record and rewrites the whole history
func (r *rateLimiter) RecordNotification(ctx context.Context, store *entity.Store) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, entity.NotificationRecord{
		PointID:    store.ID,
		MerchantID: store.MerchantID,
		Timestamp:  r.now(),
	})

	snapshot := make([]entity.NotificationRecord, len(r.records))
	copy(snapshot, r.records)

	if err := r.repo.SaveHistory(ctx, snapshot); err != nil {
		// The in-memory record still counts; it is only lost on restart.
		r.logger.Warn("Failed to persist notification history",
			slog.String("store_id", store.ID),
			slog.Any("error", err),
		)
	}
}

// History returns a copy of the working notification history
func (r *rateLimiter) History() []entity.NotificationRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := make([]entity.NotificationRecord, len(r.records))
	copy(history, r.records)

	return history
}

// Stats returns the window counts for the merchant at the current instant
func (r *rateLimiter) Stats(merchantID string) usecase.MerchantWindowStats {
	now := r.now().In(r.location)

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.statsLocked(now, merchantID)
}

func (r *rateLimiter) statsLocked(now time.Time, merchantID string) usecase.MerchantWindowStats {
	stats := usecase.MerchantWindowStats{HoursSinceLast: -1}

	year, month, day := now.Date()
	weekCutoff := now.Add(-entity.WeekWindow)
	monthCutoff := now.Add(-entity.MonthWindow)

	var (
		latest    time.Time
		hasLatest bool
	)

	for _, record := range r.records {
		ts := record.Timestamp.In(r.location)

		if y, m, d := ts.Date(); y == year && m == month && d == day {
			stats.Today++
		}

		inWeek := !ts.Before(weekCutoff)
		inMonth := !ts.Before(monthCutoff)
		if inWeek {
			stats.Week++
		}
		if inMonth {
			stats.Month++
		}

		if record.MerchantID != merchantID {
			continue
		}

		if inWeek {
			stats.MerchantWeek++
		}
		if inMonth {
			stats.MerchantMonth++
		}
		if !hasLatest || ts.After(latest) {
			latest = ts
			hasLatest = true
		}
	}

	if hasLatest {
		stats.HoursSinceLast = max(int(now.Sub(latest).Hours()), 0)
	}

	return stats
}
