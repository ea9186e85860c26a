package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"engage/config"
	"engage/internal/domain/entity"
	"engage/internal/domain/repository"
	mockRepo "engage/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLocation = time.FixedZone("UTC+8", 8*60*60)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testPolicy() entity.RateLimitPolicy {
	return entity.RateLimitPolicy{
		DailyLimit:           2,
		WeeklyLimit:          7,
		MonthlyLimit:         20,
		CooldownHours:        24,
		MerchantWeeklyLimit:  3,
		MerchantMonthlyLimit: 5,
		AllowedHourStart:     10,
		AllowedHourEnd:       20,
	}
}

// fakeClock is a settable time source shared by the limiter under test
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func at(day, hour int) time.Time {
	return time.Date(2026, time.March, day, hour, 0, 0, 0, testLocation)
}

func record(store string, merchant string, ts time.Time) entity.NotificationRecord {
	return entity.NotificationRecord{PointID: store, MerchantID: merchant, Timestamp: ts}
}

func testStore(id, merchant string) *entity.Store {
	return &entity.Store{ID: id, MerchantID: merchant, Name: "Store " + id, Latitude: 25.0330, Longitude: 121.5654}
}

func createTestRateLimiter(
	t *testing.T,
	clock *fakeClock,
	policy entity.RateLimitPolicy,
	history []entity.NotificationRecord,
) (*rateLimiter, *mockRepo.MockNotificationHistoryRepository) {
	t.Helper()

	repo := mockRepo.NewMockNotificationHistoryRepository(t)
	repo.EXPECT().LoadHistory(mock.Anything).Return(history, nil).Once()

	limiter := newRateLimiter(context.Background(), testLogger(), repo, policy, testLocation, clock.Now)

	return limiter, repo
}

func TestRateLimiter_CanNotify_EmptyHistory(t *testing.T) {
	clock := &fakeClock{now: at(10, 12)}
	limiter, _ := createTestRateLimiter(t, clock, testPolicy(), nil)

	assert.True(t, limiter.CanNotify(testStore("P1", "M1")))
}

func TestRateLimiter_CanNotify_HourWindow(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		ignore bool
		want   bool
	}{
		{name: "before window", hour: 9, want: false},
		{name: "window start is inclusive", hour: 10, want: true},
		{name: "inside window", hour: 15, want: true},
		{name: "window end is exclusive", hour: 20, want: false},
		{name: "debug override", hour: 23, ignore: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := testPolicy()
			policy.IgnoreHourWindow = tt.ignore
			clock := &fakeClock{now: at(10, tt.hour)}
			limiter, _ := createTestRateLimiter(t, clock, policy, nil)

			assert.Equal(t, tt.want, limiter.CanNotify(testStore("P1", "M1")))
		})
	}
}

func TestRateLimiter_CanNotify_DailyLimitAppliesToEveryMerchant(t *testing.T) {
	clock := &fakeClock{now: at(10, 15)}
	limiter, _ := createTestRateLimiter(t, clock, testPolicy(), []entity.NotificationRecord{
		record("P1", "M1", at(10, 10)),
		record("P2", "M2", at(10, 14)),
	})

	assert.False(t, limiter.CanNotify(testStore("P1", "M1")))
	assert.False(t, limiter.CanNotify(testStore("P9", "M9")))
}

func TestRateLimiter_CanNotify_DailyLimitUsesCalendarDay(t *testing.T) {
	// 23:30 the previous evening is less than 24h ago but on another calendar day
	clock := &fakeClock{now: at(10, 11)}
	previousEvening := time.Date(2026, time.March, 9, 23, 30, 0, 0, testLocation)
	limiter, _ := createTestRateLimiter(t, clock, testPolicy(), []entity.NotificationRecord{
		record("P1", "M1", previousEvening),
		record("P2", "M2", previousEvening),
	})

	assert.True(t, limiter.CanNotify(testStore("P3", "M3")))
}

func TestRateLimiter_CanNotify_ExampleScenario(t *testing.T) {
	clock := &fakeClock{now: at(10, 15)}
	limiter, _ := createTestRateLimiter(t, clock, testPolicy(), []entity.NotificationRecord{
		record("P1", "M1", at(10, 10)),
		record("P1", "M1", at(10, 14)),
	})

	assert.False(t, limiter.CanNotify(testStore("P1", "M1")), "daily cap reached")
	assert.False(t, limiter.CanNotify(testStore("P5", "M1")), "daily cap applies to any store of the merchant")

	clock.now = at(11, 15)
	assert.True(t, limiter.CanNotify(testStore("P1", "M1")), "25h since the last record, merchant caps not reached")
}

func TestRateLimiter_CanNotify_WeeklyAndMonthlyLimits(t *testing.T) {
	t.Run("weekly limit counts the trailing seven days", func(t *testing.T) {
		history := make([]entity.NotificationRecord, 0, 7)
		for day := 3; day <= 9; day++ {
			history = append(history, record("P", "M"+string(rune('A'+day)), at(day, 12)))
		}
		clock := &fakeClock{now: at(10, 11)}
		limiter, _ := createTestRateLimiter(t, clock, testPolicy(), history)

		assert.False(t, limiter.CanNotify(testStore("P1", "M1")))

		// The record from the 3rd at noon leaves the window one hour later.
		clock.now = at(10, 12).Add(time.Minute)
		assert.True(t, limiter.CanNotify(testStore("P1", "M1")))
	})

	t.Run("monthly limit counts the trailing thirty days", func(t *testing.T) {
		policy := testPolicy()
		policy.WeeklyLimit = 100
		policy.MonthlyLimit = 3
		clock := &fakeClock{now: at(28, 12)}
		limiter, _ := createTestRateLimiter(t, clock, policy, []entity.NotificationRecord{
			record("P1", "MA", at(1, 12)),
			record("P2", "MB", at(8, 12)),
			record("P3", "MC", at(15, 12)),
		})

		assert.False(t, limiter.CanNotify(testStore("P4", "MD")))
	})
}

func TestRateLimiter_CanNotify_MerchantCooldown(t *testing.T) {
	policy := testPolicy()
	policy.DailyLimit = 10
	last := time.Date(2026, time.March, 9, 14, 30, 0, 0, testLocation)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "one minute short of the boundary", now: last.Add(24*time.Hour - time.Minute), want: false},
		{name: "exactly at the boundary hour", now: last.Add(24 * time.Hour), want: true},
		{name: "well after the boundary", now: last.Add(28 * time.Hour), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: tt.now}
			limiter, _ := createTestRateLimiter(t, clock, policy, []entity.NotificationRecord{
				record("P1", "M1", last.Add(-2*time.Hour)),
				record("P2", "M1", last),
			})

			assert.Equal(t, tt.want, limiter.CanNotify(testStore("P3", "M1")))
			assert.True(t, limiter.CanNotify(testStore("P4", "M2")), "other merchants are not cooled down")
		})
	}
}

func TestRateLimiter_CanNotify_MerchantWindowLimits(t *testing.T) {
	policy := testPolicy()
	policy.DailyLimit = 10
	policy.WeeklyLimit = 10

	t.Run("merchant weekly limit", func(t *testing.T) {
		clock := &fakeClock{now: at(10, 15)}
		limiter, _ := createTestRateLimiter(t, clock, policy, []entity.NotificationRecord{
			record("P1", "M1", at(5, 12)),
			record("P2", "M1", at(6, 12)),
			record("P3", "M1", at(7, 12)),
		})

		assert.False(t, limiter.CanNotify(testStore("P4", "M1")))
		assert.True(t, limiter.CanNotify(testStore("P4", "M2")))
	})

	t.Run("merchant monthly limit", func(t *testing.T) {
		clock := &fakeClock{now: at(28, 15)}
		limiter, _ := createTestRateLimiter(t, clock, policy, []entity.NotificationRecord{
			record("P1", "M1", at(1, 12)),
			record("P1", "M1", at(3, 12)),
			record("P1", "M1", at(5, 12)),
			record("P1", "M1", at(12, 12)),
			record("P1", "M1", at(19, 12)),
		})

		assert.False(t, limiter.CanNotify(testStore("P1", "M1")))
		assert.Equal(t, 5, limiter.Stats("M1").MerchantMonth)
	})
}

func TestRateLimiter_CanNotify_DoesNotMutate(t *testing.T) {
	clock := &fakeClock{now: at(10, 12)}
	limiter, _ := createTestRateLimiter(t, clock, testPolicy(), nil)

	for range 5 {
		require.True(t, limiter.CanNotify(testStore("P1", "M1")))
	}
	assert.Empty(t, limiter.History())
}

func TestRateLimiter_RecordNotification_PersistsFullHistory(t *testing.T) {
	clock := &fakeClock{now: at(10, 12)}
	existing := record("P0", "M0", at(9, 12))
	limiter, repo := createTestRateLimiter(t, clock, testPolicy(), []entity.NotificationRecord{existing})

	repo.EXPECT().
		SaveHistory(mock.Anything, []entity.NotificationRecord{existing, record("P1", "M1", at(10, 12))}).
		Return(nil).
		Once()

	limiter.RecordNotification(context.Background(), testStore("P1", "M1"))

	assert.Len(t, limiter.History(), 2)
}

func TestRateLimiter_RecordNotification_KeepsRecordWhenSaveFails(t *testing.T) {
	clock := &fakeClock{now: at(10, 12)}
	limiter, repo := createTestRateLimiter(t, clock, testPolicy(), nil)

	repo.EXPECT().SaveHistory(mock.Anything, mock.Anything).Return(errors.New("disk full")).Twice()

	limiter.RecordNotification(context.Background(), testStore("P1", "M1"))
	assert.False(t, limiter.CanNotify(testStore("P2", "M1")), "cooldown uses the unsaved record")

	limiter.RecordNotification(context.Background(), testStore("P3", "M3"))
	assert.False(t, limiter.CanNotify(testStore("P4", "M4")), "daily limit counts unsaved records")
}

func TestRateLimiter_Load(t *testing.T) {
	t.Run("drops records older than thirty days", func(t *testing.T) {
		clock := &fakeClock{now: at(31, 12)}
		limiter, _ := createTestRateLimiter(t, clock, testPolicy(), []entity.NotificationRecord{
			record("P1", "M1", at(1, 11)),
			record("P2", "M2", at(1, 13)),
			record("P3", "M3", at(30, 12)),
		})

		history := limiter.History()
		require.Len(t, history, 2)
		assert.Equal(t, "P2", history[0].PointID)
		assert.Equal(t, "P3", history[1].PointID)
	})

	t.Run("starts empty when the history cannot be read", func(t *testing.T) {
		repo := mockRepo.NewMockNotificationHistoryRepository(t)
		repo.EXPECT().LoadHistory(mock.Anything).Return(nil, errors.New("corrupt payload")).Once()

		clock := &fakeClock{now: at(10, 12)}
		limiter := newRateLimiter(context.Background(), testLogger(), repo, testPolicy(), testLocation, clock.Now)

		assert.Empty(t, limiter.History())
		assert.True(t, limiter.CanNotify(testStore("P1", "M1")))
	})

	t.Run("starts empty when nothing was persisted", func(t *testing.T) {
		repo := mockRepo.NewMockNotificationHistoryRepository(t)
		repo.EXPECT().LoadHistory(mock.Anything).Return(nil, repository.ErrHistoryNotFound).Once()

		clock := &fakeClock{now: at(10, 12)}
		limiter := newRateLimiter(context.Background(), testLogger(), repo, testPolicy(), testLocation, clock.Now)

		assert.Empty(t, limiter.History())
	})
}

func TestRateLimiter_Stats(t *testing.T) {
	clock := &fakeClock{now: at(10, 15)}
	limiter, _ := createTestRateLimiter(t, clock, testPolicy(), []entity.NotificationRecord{
		record("P1", "M1", at(2, 12)),
		record("P2", "M2", at(9, 12)),
		record("P1", "M1", at(10, 11)),
	})

	stats := limiter.Stats("M1")

	assert.Equal(t, 1, stats.Today)
	assert.Equal(t, 2, stats.Week)
	assert.Equal(t, 3, stats.Month)
	assert.Equal(t, 1, stats.MerchantWeek)
	assert.Equal(t, 2, stats.MerchantMonth)
	assert.Equal(t, 4, stats.HoursSinceLast)
	assert.Equal(t, -1, limiter.Stats("M9").HoursSinceLast)
}

func TestPolicyFromConfig(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, 2, policyFromConfig(cfg).DailyLimit)

	cfg.Engagement = &config.EngagementConfig{
		IgnoreHourWindow: true,
		RateLimit:        config.RateLimitConfig{DailyLimit: 5, AllowedHourStart: 8, AllowedHourEnd: 22},
	}
	policy := policyFromConfig(cfg)

	assert.Equal(t, 5, policy.DailyLimit)
	assert.Equal(t, 8, policy.AllowedHourStart)
	assert.True(t, policy.IgnoreHourWindow)
}

func TestPolicyFromConfig_PartialRateLimitKeepsDefaults(t *testing.T) {
	cfg := &config.Config{Engagement: &config.EngagementConfig{
		RateLimit: config.RateLimitConfig{DailyLimit: 5},
	}}
	cfg.ApplyDefaults()

	policy := policyFromConfig(cfg)

	assert.Equal(t, entity.RateLimitPolicy{
		DailyLimit:           5,
		WeeklyLimit:          7,
		MonthlyLimit:         20,
		CooldownHours:        24,
		MerchantWeeklyLimit:  3,
		MerchantMonthlyLimit: 5,
		AllowedHourStart:     10,
		AllowedHourEnd:       20,
	}, policy)

	// Without ApplyDefaults the policy is still completed field by field.
	raw := &config.Config{Engagement: &config.EngagementConfig{
		RateLimit: config.RateLimitConfig{DailyLimit: 5},
	}}
	assert.Equal(t, policy, policyFromConfig(raw))
}

func TestRateLimiter_PartialConfigStillNotifies(t *testing.T) {
	cfg := &config.Config{Engagement: &config.EngagementConfig{
		RateLimit: config.RateLimitConfig{DailyLimit: 5},
	}}
	clock := &fakeClock{now: at(2, 12)}

	repo := mockRepo.NewMockNotificationHistoryRepository(t)
	repo.EXPECT().LoadHistory(mock.Anything).Return(nil, repository.ErrHistoryNotFound).Once()

	limiter := newRateLimiter(context.Background(), testLogger(), repo, policyFromConfig(cfg), testLocation, clock.Now)

	assert.True(t, limiter.CanNotify(testStore("P1", "M1")))
}
