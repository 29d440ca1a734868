package logging

// ProgressSampler suppresses per-row progress logs, emitting only when the
// processed row count crosses a bucket boundary.
type ProgressSampler struct {
	bucketSize int
	lastBucket int
}

// NewProgressSampler constructs a sampler that emits every bucketSize rows
// (default 100).
func NewProgressSampler(bucketSize int) *ProgressSampler {
	if bucketSize <= 0 {
		bucketSize = 100
	}
	return &ProgressSampler{bucketSize: bucketSize}
}

// ShouldLog reports whether progress at rows processed should be logged.
func (s *ProgressSampler) ShouldLog(rows int) bool {
	if s == nil {
		return true
	}
	if rows <= 0 {
		return false
	}
	bucket := rows / s.bucketSize
	if bucket > s.lastBucket {
		s.lastBucket = bucket
		return true
	}
	return false
}

// Reset clears the sampler state.
func (s *ProgressSampler) Reset() {
	if s == nil {
		return
	}
	s.lastBucket = 0
}
