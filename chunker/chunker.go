/*
nettf - LAN file and directory transfer utility.

This file implements the adaptive chunk-size controller: it dynamically
retunes transfer granularity, between an 8KB floor and a 2MB ceiling, from a
rolling average of observed throughput, without any out-of-band signaling.
*/

// Package chunker tracks per-chunk throughput and recomputes the current
// chunk size for a transfer from a rolling average over an adjustment
// interval.
package chunker

import "time"

const (
	// MinChunkSize is the smallest chunk size the controller will select.
	MinChunkSize = 8 * 1024
	// MaxChunkSize is the largest chunk size the controller will select.
	MaxChunkSize = 2 * 1024 * 1024
	// InitialChunkSize is used until the first adjustment fires.
	InitialChunkSize = 64 * 1024

	// SpeedSamples is the size of the rolling throughput window.
	SpeedSamples = 5
	// AdjustmentInterval is how often the controller may re-tune.
	AdjustmentInterval = 2 * time.Second
)

// State holds the adaptive chunk-size controller for one logical transfer.
// It is not safe for concurrent use; nettf drives at most one transfer at a
// time per connection.
type State struct {
	currentChunkSize int

	lastAdjustment time.Time
	transferStart  time.Time

	speedSamples [SpeedSamples]float64
	sampleIndex  int
	sampleCount  int

	totalBytes       uint64
	bytesTransferred uint64 // since the last adjustment
	now              func() time.Time
}

// Init resets state for a new transfer of totalBytes (0 if unknown).
func (s *State) Init(totalBytes uint64) {
	if s.now == nil {
		s.now = time.Now
	}
	now := s.now()

	*s = State{
		currentChunkSize: InitialChunkSize,
		lastAdjustment:   now,
		transferStart:    now,
		totalBytes:       totalBytes,
		now:              s.now,
	}
}

// ChunkSize returns the current chunk size, defensively clamped to
// [MinChunkSize, MaxChunkSize].
func (s *State) ChunkSize() int {
	switch {
	case s.currentChunkSize < MinChunkSize:
		s.currentChunkSize = MinChunkSize
	case s.currentChunkSize > MaxChunkSize:
		s.currentChunkSize = MaxChunkSize
	}
	return s.currentChunkSize
}

// Update records a completed chunk transfer of bytesDone in elapsedSeconds
// and, if an adjustment interval has elapsed, recomputes the chunk size from
// the rolling average of recorded samples. A non-positive elapsedSeconds
// discards the sample (no divide-by-zero, no spurious infinity).
func (s *State) Update(bytesDone uint64, elapsedSeconds float64) {
	if s.now == nil {
		s.now = time.Now
	}
	if elapsedSeconds <= 0 {
		return
	}

	speed := float64(bytesDone) / elapsedSeconds

	s.speedSamples[s.sampleIndex] = speed
	s.sampleIndex = (s.sampleIndex + 1) % SpeedSamples
	if s.sampleCount < SpeedSamples {
		s.sampleCount++
	}

	s.bytesTransferred += bytesDone

	now := s.now()
	if now.Sub(s.lastAdjustment) >= AdjustmentInterval {
		s.currentChunkSize = tierFor(s.averageSpeed())
		s.lastAdjustment = now
		s.bytesTransferred = 0
	}
}

// averageSpeed returns the mean of the populated sample slots, or 0 if none
// have been recorded yet.
func (s *State) averageSpeed() float64 {
	if s.sampleCount == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < s.sampleCount; i++ {
		sum += s.speedSamples[i]
	}
	return sum / float64(s.sampleCount)
}

// Reset clears the sample window but preserves the current chunk size.
func (s *State) Reset() {
	if s.now == nil {
		s.now = time.Now
	}
	preserved := s.currentChunkSize
	now := s.now()

	*s = State{
		currentChunkSize: preserved,
		lastAdjustment:   now,
		transferStart:    now,
		now:              s.now,
	}
}

// tierFor maps an average speed (bytes/second) to the next chunk size using
// an inclusive-lower/exclusive-upper tier table. Ties on tier boundaries
// fall into the lower tier.
func tierFor(avgSpeed float64) int {
	const mb = 1024.0 * 1024.0
	switch {
	case avgSpeed < 1*mb:
		return MinChunkSize
	case avgSpeed < 10*mb:
		return 64 * 1024
	case avgSpeed < 50*mb:
		return 256 * 1024
	case avgSpeed < 100*mb:
		return 1024 * 1024
	default:
		return MaxChunkSize
	}
}
