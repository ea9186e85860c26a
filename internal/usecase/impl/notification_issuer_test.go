package impl

import (
	"context"
	"testing"

	"engage/internal/domain/entity"
	"engage/internal/infra/metrics"
	mockSvc "engage/internal/mocks/service"
	mockUsecase "engage/internal/mocks/usecase"
	"engage/internal/usecase"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testMetrics(t *testing.T) *metrics.Metrics {
	t.Helper()

	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	return m
}

func createTestNotificationIssuer(t *testing.T) (
	usecase.NotificationIssuer,
	*mockUsecase.MockRateLimiter,
	*mockSvc.MockLocalNotifier,
) {
	rateLimiter := mockUsecase.NewMockRateLimiter(t)
	notifier := mockSvc.NewMockLocalNotifier(t)

	issuer := NewNotificationIssuer(testLogger(), rateLimiter, notifier, testMetrics(t))

	return issuer, rateLimiter, notifier
}

func TestNotificationIssuer_Issue_Success(t *testing.T) {
	issuer, rateLimiter, notifier := createTestNotificationIssuer(t)

	ctx := context.Background()
	store := testStore("P1", "M1")
	store.OfferTitle = "20% off"
	store.OfferDescription = "Show this notification at the counter"

	rateLimiter.EXPECT().CanNotify(store).Return(true).Once()
	notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Title == "20% off" &&
				n.Body == "Show this notification at the counter" &&
				n.Data["store_id"] == "P1" &&
				n.Data["merchant_id"] == "M1"
		})).
		Return(nil).
		Once()
	rateLimiter.EXPECT().RecordNotification(ctx, store).Return().Once()

	assert.True(t, issuer.Issue(ctx, store))
}

func TestNotificationIssuer_Issue_DefaultContent(t *testing.T) {
	issuer, rateLimiter, notifier := createTestNotificationIssuer(t)

	ctx := context.Background()
	store := testStore("P1", "M1")
	store.Name = "Corner Bakery"

	rateLimiter.EXPECT().CanNotify(store).Return(true).Once()
	notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Title == "Nearby offer" && n.Body == "Check out Corner Bakery"
		})).
		Return(nil).
		Once()
	rateLimiter.EXPECT().RecordNotification(ctx, store).Return().Once()

	assert.True(t, issuer.Issue(ctx, store))
}

func TestNotificationIssuer_Issue_RateLimited(t *testing.T) {
	issuer, rateLimiter, _ := createTestNotificationIssuer(t)

	ctx := context.Background()
	store := testStore("P1", "M1")

	rateLimiter.EXPECT().CanNotify(store).Return(false).Once()

	assert.False(t, issuer.Issue(ctx, store))
	rateLimiter.AssertNotCalled(t, "RecordNotification", mock.Anything, mock.Anything)
}

func TestNotificationIssuer_Issue_SubmissionFailureStillSpendsSlot(t *testing.T) {
	issuer, rateLimiter, notifier := createTestNotificationIssuer(t)

	ctx := context.Background()
	store := testStore("P1", "M1")

	rateLimiter.EXPECT().CanNotify(store).Return(true).Once()
	notifier.EXPECT().Notify(ctx, mock.Anything).Return(errors.New("delivery surface unavailable")).Once()
	rateLimiter.EXPECT().RecordNotification(ctx, store).Return().Once()

	assert.True(t, issuer.Issue(ctx, store))
}

func TestNotificationIssuer_Issue_PermissionDenied(t *testing.T) {
	issuer, rateLimiter, notifier := createTestNotificationIssuer(t)

	ctx := context.Background()
	store := testStore("P1", "M1")

	assert.True(t, issuer.Permitted())
	issuer.SetPermission(false)
	assert.False(t, issuer.Permitted())
	assert.False(t, issuer.Issue(ctx, store))

	rateLimiter.AssertNotCalled(t, "CanNotify", mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)

	issuer.SetPermission(true)
	rateLimiter.EXPECT().CanNotify(store).Return(false).Once()
	assert.False(t, issuer.Issue(ctx, store))
}
