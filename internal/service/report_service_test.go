package service_test

import (
	"context"
	"testing"
	"time"

	cacheMocks "mela-ticketing/internal/cache/mocks"
	"mela-ticketing/internal/model"
	"mela-ticketing/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_DashboardSummary(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	nowFn := func() time.Time { return now }

	t.Run("Empty database yields zeroed summary", func(t *testing.T) {
		bookingRepo, _ := newBookingMocks()
		svc := service.NewReportService(bookingRepo, nil, nowFn)

		bookingRepo.On("CountAll", ctx).Return(0, nil).Once()
		bookingRepo.On("SumRevenue", ctx, []model.BookingStatus{
			model.BookingStatusPaid, model.BookingStatusUsed,
		}).Return(0, nil).Once()
		bookingRepo.On("CountCreatedBetween", ctx, mock.Anything, mock.Anything).Return(0, nil).Times(7)

		summary, err := svc.DashboardSummary(ctx)
		require.NoError(t, err)

		assert.Equal(t, 0, summary.TotalBookings)
		assert.Equal(t, 0, summary.TotalRevenue)
		assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, summary.DailyCounts)
		assert.Len(t, summary.DailyLabels, 7)
	})

	t.Run("Daily windows cover 7 local days oldest first", func(t *testing.T) {
		bookingRepo, _ := newBookingMocks()
		svc := service.NewReportService(bookingRepo, nil, nowFn)

		bookingRepo.On("CountAll", ctx).Return(5, nil).Once()
		bookingRepo.On("SumRevenue", ctx, mock.Anything).Return(1200, nil).Once()

		var starts []time.Time
		bookingRepo.On("CountCreatedBetween", ctx, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				starts = append(starts, args.Get(1).(time.Time))
			}).Return(1, nil).Times(7)

		summary, err := svc.DashboardSummary(ctx)
		require.NoError(t, err)

		require.Len(t, starts, 7)
		assert.Equal(t, "2025-06-09", starts[0].Format("2006-01-02"))
		assert.Equal(t, "2025-06-15", starts[6].Format("2006-01-02"))
		for _, s := range starts {
			assert.Equal(t, 0, s.Hour())
			assert.Equal(t, 0, s.Minute())
		}
		assert.Equal(t, "2025-06-09", summary.DailyLabels[0])
		assert.Equal(t, "2025-06-15", summary.DailyLabels[6])
		assert.Equal(t, 1200, summary.TotalRevenue)
	})

	t.Run("Windows stay inside their calendar day across DST", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skip("tzdata unavailable")
		}

		bookingRepo, _ := newBookingMocks()
		// 2025-03-09 是美東春季撥快日，當天只有 23 小時
		dstNow := time.Date(2025, 3, 12, 12, 0, 0, 0, loc)
		svc := service.NewReportService(bookingRepo, nil, func() time.Time { return dstNow })

		bookingRepo.On("CountAll", ctx).Return(0, nil).Once()
		bookingRepo.On("SumRevenue", ctx, mock.Anything).Return(0, nil).Once()

		type window struct{ start, end time.Time }
		var windows []window
		bookingRepo.On("CountCreatedBetween", ctx, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				windows = append(windows, window{
					start: args.Get(1).(time.Time),
					end:   args.Get(2).(time.Time),
				})
			}).Return(0, nil).Times(7)

		_, err = svc.DashboardSummary(ctx)
		require.NoError(t, err)

		require.Len(t, windows, 7)
		for _, w := range windows {
			assert.Equal(t, w.start.Format("2006-01-02"), w.end.Format("2006-01-02"))
			next := w.end.Add(time.Nanosecond)
			assert.True(t, next.Equal(w.start.AddDate(0, 0, 1)))
		}
	})

	t.Run("Cache hit skips repository", func(t *testing.T) {
		bookingRepo, _ := newBookingMocks()
		dashCache := cacheMocks.NewDashboardCacheMock()
		svc := service.NewReportService(bookingRepo, dashCache, nowFn)

		cached := &model.DashboardSummary{TotalBookings: 3, TotalRevenue: 900}
		dashCache.On("Get", ctx).Return(cached, nil).Once()

		summary, err := svc.DashboardSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, cached, summary)
		bookingRepo.AssertNotCalled(t, "CountAll")
	})

	t.Run("Cache miss computes and writes back", func(t *testing.T) {
		bookingRepo, _ := newBookingMocks()
		dashCache := cacheMocks.NewDashboardCacheMock()
		svc := service.NewReportService(bookingRepo, dashCache, nowFn)

		dashCache.On("Get", ctx).Return(nil, nil).Once()
		bookingRepo.On("CountAll", ctx).Return(2, nil).Once()
		bookingRepo.On("SumRevenue", ctx, mock.Anything).Return(400, nil).Once()
		bookingRepo.On("CountCreatedBetween", ctx, mock.Anything, mock.Anything).Return(0, nil).Times(7)
		dashCache.On("Set", ctx, mock.Anything, mock.Anything).Return(nil).Once()

		summary, err := svc.DashboardSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.TotalBookings)
		dashCache.AssertExpectations(t)
	})
}
