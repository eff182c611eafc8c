package service

import (
	"context"
	"time"

	"mela-ticketing/internal/cache"
	"mela-ticketing/internal/model"
	"mela-ticketing/internal/repository"
	"mela-ticketing/pkg/logger"

	"go.uber.org/zap"
)

const (
	dashboardDays     = 7
	dashboardCacheTTL = 30 * time.Second
)

type ReportService interface {
	// DashboardSummary 後台儀表板彙總；純讀取，無任何寫入
	DashboardSummary(ctx context.Context) (*model.DashboardSummary, error)
}

type ReportServiceImpl struct {
	repository repository.BookingRepository
	cache      cache.DashboardCache
	now        func() time.Time
}

// NewReportService cache 可為 nil(不快取)；nowFn 供測試注入，nil 時使用 time.Now
func NewReportService(bookingRepository repository.BookingRepository, dashboardCache cache.DashboardCache, nowFn func() time.Time) ReportService {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &ReportServiceImpl{
		repository: bookingRepository,
		cache:      dashboardCache,
		now:        nowFn,
	}
}

func (s *ReportServiceImpl) DashboardSummary(ctx context.Context) (*model.DashboardSummary, error) {
	log := logger.WithComponent("report_service")

	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			// 快取壞掉就直接查 DB
			log.Warn("dashboard cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	total, err := s.repository.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repository.SumRevenue(ctx, []model.BookingStatus{
		model.BookingStatusPaid,
		model.BookingStatusUsed,
	})
	if err != nil {
		return nil, err
	}

	summary := &model.DashboardSummary{
		TotalBookings: total,
		TotalRevenue:  revenue,
		DailyLabels:   make([]string, 0, dashboardDays),
		DailyCounts:   make([]int, 0, dashboardDays),
	}

	// 以本地日曆日切窗，最舊的一天排最前面
	now := s.now()
	for i := dashboardDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		// 用隔日零點回推，DST 當天不是 24 小時也不會切錯日
		end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)

		count, err := s.repository.CountCreatedBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}

		summary.DailyLabels = append(summary.DailyLabels, start.Format("2006-01-02"))
		summary.DailyCounts = append(summary.DailyCounts, count)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, summary, dashboardCacheTTL); err != nil {
			log.Warn("dashboard cache write failed", zap.Error(err))
		}
	}

	return summary, nil
}
