package matching

import (
	"procura/internal/domain"
)

// Scoring thresholds. CounterpartyFloor is a hard floor: a candidate whose
// counterparty name scores below it is never considered, regardless of item
// overlap.
const (
	CounterpartyFloor      = 0.5
	ItemNameThreshold      = 0.6
	QuantityTolerance      = 0.05
	AcceptanceScore        = 0.8
	neutralCounterpartySim = 0.5
)

// WithinTolerance reports whether two quantities agree within the relative
// tolerance. Two zero quantities are treated as a match.
func WithinTolerance(q1, q2 float64) bool {
	maxQ := q1
	if q2 > maxQ {
		maxQ = q2
	}
	if maxQ == 0 {
		return true
	}
	diff := q1 - q2
	if diff < 0 {
		diff = -diff
	}
	return diff/maxQ <= QuantityTolerance
}

// Engine reconciles an extracted delivery note against a pool of pending
// candidate records.
type Engine struct{}

// NewEngine creates a ReconciliationEngine.
func NewEngine() *Engine {
	return &Engine{}
}

// Reconcile scores every candidate and returns the best match decision.
// Candidates are evaluated in pool order; ties keep the first seen. An empty
// pool, or a pool where no candidate clears the counterparty floor, yields
// matched=false with every extracted item reported as extra.
//
// Callers must reject documents with zero items before calling.
func (e *Engine) Reconcile(doc *domain.ExtractedDocument, candidates []domain.CandidateRecord) *domain.MatchResult {
	var best *domain.MatchResult

	for i := range candidates {
		cand := &candidates[i]

		counterpartySim := neutralCounterpartySim
		if doc.CounterpartyName != "" {
			counterpartySim = NormalizedSimilarity(doc.CounterpartyName, cand.SupplierName)
		}
		if counterpartySim < CounterpartyFloor {
			continue
		}

		reports, matched := assignItems(doc.Items, cand.LineItems)

		denom := len(doc.Items)
		if len(cand.LineItems) > denom {
			denom = len(cand.LineItems)
		}
		itemScore := 0.0
		if denom > 0 {
			itemScore = float64(matched) / float64(denom)
		}
		score := itemScore * counterpartySim

		if best == nil || score > best.Score {
			id := cand.ID
			best = &domain.MatchResult{
				Score:            score,
				CandidateID:      &id,
				CounterpartyName: cand.SupplierName,
				ItemReports:      reports,
			}
		}
	}

	if best == nil {
		return &domain.MatchResult{
			Matched:     false,
			Score:       0,
			ItemReports: allExtra(doc.Items),
		}
	}
	best.Matched = best.Score >= AcceptanceScore
	return best
}

// assignItems runs the greedy one-to-one assignment: extracted items in
// document order each claim the unused candidate line with the highest name
// similarity above the threshold. Unclaimed candidate lines are appended as
// missing. Returns the per-item reports and the count of exact matches
// (mismatches do not count toward the score).
func assignItems(extracted []domain.ExtractedLineItem, candidateItems []domain.CandidateLineItem) ([]domain.ItemMatchReport, int) {
	used := make([]bool, len(candidateItems))
	reports := make([]domain.ItemMatchReport, 0, len(extracted)+len(candidateItems))
	matched := 0

	for _, item := range extracted {
		bestIdx := -1
		bestSim := ItemNameThreshold
		for j := range candidateItems {
			if used[j] {
				continue
			}
			if sim := NormalizedSimilarity(item.Name, candidateItems[j].Name); sim > bestSim {
				bestSim = sim
				bestIdx = j
			}
		}

		if bestIdx == -1 {
			reports = append(reports, domain.ItemMatchReport{
				ExtractedName: item.Name,
				ExtractedQty:  item.Quantity,
				ExtractedUnit: item.Unit,
				Status:        domain.MatchStatusExtra,
			})
			continue
		}

		used[bestIdx] = true
		cl := candidateItems[bestIdx]
		status := domain.MatchStatusMismatch
		if NormalizeUnit(item.Unit) == NormalizeUnit(cl.Unit) && WithinTolerance(item.Quantity, cl.Quantity) {
			status = domain.MatchStatusMatch
			matched++
		}
		reports = append(reports, domain.ItemMatchReport{
			ExtractedName: item.Name,
			ExtractedQty:  item.Quantity,
			ExtractedUnit: item.Unit,
			MatchedName:   cl.Name,
			MatchedQty:    cl.Quantity,
			MatchedUnit:   cl.Unit,
			Status:        status,
		})
	}

	for j, cl := range candidateItems {
		if used[j] {
			continue
		}
		reports = append(reports, domain.ItemMatchReport{
			MatchedName: cl.Name,
			MatchedQty:  cl.Quantity,
			MatchedUnit: cl.Unit,
			Status:      domain.MatchStatusMissing,
		})
	}

	return reports, matched
}

func allExtra(items []domain.ExtractedLineItem) []domain.ItemMatchReport {
	reports := make([]domain.ItemMatchReport, 0, len(items))
	for _, item := range items {
		reports = append(reports, domain.ItemMatchReport{
			ExtractedName: item.Name,
			ExtractedQty:  item.Quantity,
			ExtractedUnit: item.Unit,
			Status:        domain.MatchStatusExtra,
		})
	}
	return reports
}
