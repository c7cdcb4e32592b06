package usecase

import "github.com/nutrilog/backend/internal/domain"

// statusTolerance widens the acceptance window below a normal-kind target:
// anything from 85% of target up to 1.5x target counts as achieved.
const statusTolerance = 0.15

// Classify buckets an aggregate value against its daily target. target must
// be positive; that precondition is owned by the target table. The function
// is pure and total over non-negative actuals, and boundary inclusivity
// matters: actual == target is OPTIMAL for limits and TARGET_ACHIEVED for
// normals.
func Classify(actual, target float64, kind domain.TargetKind) domain.Band {
	if kind == domain.KindLimit {
		switch {
		case actual <= target*0.8:
			return domain.BandWellBelowLimit
		case actual <= target:
			return domain.BandOptimal
		case actual <= target*1.15:
			return domain.BandApproachingLimit
		default:
			return domain.BandLimitExceeded
		}
	}

	switch {
	case actual > target*2.5:
		return domain.BandDangerouslyHigh
	case actual > target*1.5:
		return domain.BandTooHigh
	case actual >= target*(1-statusTolerance):
		return domain.BandTargetAchieved
	case actual >= target*0.65:
		return domain.BandBelowOptimal
	default:
		return domain.BandCriticalLow
	}
}

// NutrientStatus is one row of a nutrition report: the aggregate figures for
// a nutrient plus its verdict against the target table. Band is empty for
// nutrients without a registered target (water, ash).
type NutrientStatus struct {
	Nutrient      domain.Nutrient   `json:"nutrient"`
	Total         float64           `json:"total"`
	AveragePerDay float64           `json:"average_per_day"`
	Target        float64           `json:"target,omitempty"`
	Kind          domain.TargetKind `json:"kind,omitempty"`
	Band          domain.Band       `json:"band,omitempty"`
}

// ReportService joins aggregates with a target table into display-ready
// status rows.
type ReportService struct {
	aggregator *AggregationService
	targets    domain.TargetTable
}

// NewReportService creates a report service bound to an immutable target
// table.
func NewReportService(aggregator *AggregationService, targets domain.TargetTable) *ReportService {
	return &ReportService{
		aggregator: aggregator,
		targets:    targets,
	}
}

// Report aggregates records and classifies every tracked nutrient, in the
// fixed nutrient order.
func (s *ReportService) Report(records []domain.MealRecord) (domain.AggregateResult, []NutrientStatus) {
	agg := s.aggregator.Aggregate(records)

	statuses := make([]NutrientStatus, 0, len(domain.AllNutrients))
	for _, n := range domain.AllNutrients {
		status := NutrientStatus{
			Nutrient:      n,
			Total:         agg.Totals[n],
			AveragePerDay: agg.Averages[n],
		}
		if target, ok := s.targets[n]; ok {
			status.Target = target.Value
			status.Kind = target.Kind
			status.Band = Classify(agg.Totals[n], target.Value, target.Kind)
		}
		statuses = append(statuses, status)
	}
	return agg, statuses
}
