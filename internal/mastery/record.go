// Package mastery tracks per-fact attempt statistics and derives
// skill-level progress summaries from them.
package mastery

import (
	"time"

	"github.com/mathdash/mathdash/internal/config"
	"github.com/mathdash/mathdash/internal/curriculum"
)

// Status is the coarse cached classification of a fact record.
type Status string

const (
	StatusLearning Status = "learning"
	StatusMastered Status = "mastered"
)

const (
	// weightDecay shrinks a mastered fact's relevance weight after each
	// further correct attempt, down to minWeight.
	weightDecay = 0.8
	minWeight   = 0.1
)

// FactRecord accumulates a profile's history for one arithmetic fact.
// Records are created on first attempt and never deleted; correct never
// exceeds attempts.
type FactRecord struct {
	ProfileID     string
	Fact          string
	Operation     curriculum.Operation
	Attempts      int
	Correct       int
	AvgResponseMs float64
	LastAttemptAt time.Time
	Status        Status
	Weight        float64
}

// NewFactRecord returns an empty record for a fact.
func NewFactRecord(profileID, fact string, op curriculum.Operation) FactRecord {
	return FactRecord{
		ProfileID: profileID,
		Fact:      fact,
		Operation: op,
		Status:    StatusLearning,
		Weight:    1.0,
	}
}

// Accuracy returns the record's accuracy as a fraction in [0, 1].
func (r FactRecord) Accuracy() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempts)
}

// Mastered reports whether the record crosses the per-fact mastery
// threshold: enough attempts at sufficient accuracy.
func (r FactRecord) Mastered(th config.Mastery) bool {
	return r.Attempts >= th.RecordMinAttempts && r.Accuracy() >= th.RecordMinAccuracy
}

// Apply folds one attempt outcome into the record: counters, running
// average response time, timestamp, and the cached status and relevance
// weight. Mastered facts decay in weight so practice selection can
// de-prioritize them.
func (r *FactRecord) Apply(correct bool, responseMs int, at time.Time, th config.Mastery) {
	r.Attempts++
	if correct {
		r.Correct++
	}
	r.AvgResponseMs += (float64(responseMs) - r.AvgResponseMs) / float64(r.Attempts)
	r.LastAttemptAt = at

	if r.Mastered(th) {
		if r.Status == StatusMastered && correct {
			r.Weight *= weightDecay
			if r.Weight < minWeight {
				r.Weight = minWeight
			}
		}
		r.Status = StatusMastered
	} else {
		r.Status = StatusLearning
		r.Weight = 1.0
	}
}
