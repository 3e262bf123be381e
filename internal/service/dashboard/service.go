package dashboard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pulseward/icu-backend-go/internal/domain/bed"
	"github.com/pulseward/icu-backend-go/internal/domain/dashboard"
	"github.com/pulseward/icu-backend-go/internal/domain/equipment"
	"github.com/pulseward/icu-backend-go/internal/domain/patient"
	"github.com/pulseward/icu-backend-go/internal/domain/staff"
	"github.com/pulseward/icu-backend-go/internal/pkg/orgtime"
	"github.com/pulseward/icu-backend-go/internal/pkg/sse"
	"github.com/pulseward/icu-backend-go/internal/repository/redisstore"
)

type DashboardServiceImpl struct {
	staff.StaffRepository
	patient.PatientRepository
	bed.BedRepository
	equipment.EquipmentRepository
	cache  *redisstore.SnapshotCache
	hub    *sse.Hub
	logger *slog.Logger
}

func NewDashboardService(
	staffRepo staff.StaffRepository,
	patientRepo patient.PatientRepository,
	bedRepo bed.BedRepository,
	equipmentRepo equipment.EquipmentRepository,
	cache *redisstore.SnapshotCache,
	hub *sse.Hub,
	logger *slog.Logger,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		StaffRepository:     staffRepo,
		PatientRepository:   patientRepo,
		BedRepository:       bedRepo,
		EquipmentRepository: equipmentRepo,
		cache:               cache,
		hub:                 hub,
		logger:              logger,
	}
}

// GetStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.Stats, error) {
	stats, err := s.cache.Get(ctx)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, redisstore.ErrSnapshotMiss) {
		s.logger.Warn("dashboard snapshot cache read failed", slog.Any("error", err))
	}

	return s.Refresh(ctx)
}

// Refresh implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Refresh(ctx context.Context) (dashboard.Stats, error) {
	bedCounts, err := s.BedRepository.CountByStatus(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	onDuty, err := s.StaffRepository.CountOnDutyByRole(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	bySeverity, err := s.PatientRepository.CountBySeverity(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	byStatus, err := s.EquipmentRepository.CountByStatus(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	admissions, err := s.PatientRepository.CountAdmissionsSince(ctx, 7)
	if err != nil {
		return dashboard.Stats{}, err
	}

	stats := dashboard.Stats{
		Beds:                buildBedStats(bedCounts),
		StaffOnDuty:         make(map[string]int64, len(onDuty)),
		PatientsBySeverity:  make(map[string]int64, len(bySeverity)),
		EquipmentByStatus:   make(map[string]int64, len(byStatus)),
		AdmissionsLast7Days: admissions,
		GeneratedAt:         orgtime.Now().Format("2006-01-02T15:04:05Z07:00"),
	}
	for role, count := range onDuty {
		stats.StaffOnDuty[string(role)] = count
	}
	for severity, count := range bySeverity {
		stats.PatientsBySeverity[string(severity)] = count
	}
	for status, count := range byStatus {
		stats.EquipmentByStatus[string(status)] = count
	}

	if err := s.cache.Set(ctx, stats); err != nil {
		// Stale reads recompute on their own; losing the cache write only
		// costs the next request a refresh.
		s.logger.Warn("dashboard snapshot cache write failed", slog.Any("error", err))
	}

	s.hub.Broadcast(sse.Event{
		Event: "dashboard_refreshed",
		Data:  stats,
	})

	return stats, nil
}

func buildBedStats(counts map[bed.Status]int64) dashboard.BedStats {
	stats := dashboard.BedStats{
		Occupied:    counts[bed.StatusOccupied],
		Available:   counts[bed.StatusAvailable],
		Maintenance: counts[bed.StatusMaintenance],
	}
	stats.Total = stats.Occupied + stats.Available + stats.Maintenance
	if stats.Total > 0 {
		stats.OccupancyPct = float64(stats.Occupied) / float64(stats.Total) * 100
	}
	return stats
}
