// Package memory provides an in-memory candidate-record store. It is the
// default driver for the demo server and the test double for the engine.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/quorumhq/minutesearch/internal/domain/record"
)

// Store holds candidate records in memory behind a read-write mutex.
// Readers get copies, so records already handed to the engine stay
// immutable while writers add more.
type Store struct {
	mu          sync.RWMutex
	meetings    []record.Meeting
	minutes     []record.Minutes
	transcripts []record.TranscriptSegment
	actionItems []record.ActionItem
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// seed mirrors the JSON fixture layout.
type seed struct {
	Meetings    []record.Meeting           `json:"meetings"`
	Minutes     []record.Minutes           `json:"minutes"`
	Transcripts []record.TranscriptSegment `json:"transcripts"`
	ActionItems []record.ActionItem        `json:"action_items"`
}

// LoadSeed reads a JSON fixture file and appends its records to the store.
func (s *Store) LoadSeed(path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", path, err)
	}
	var sd seed
	if err := json.Unmarshal(data, &sd); err != nil {
		return fmt.Errorf("parse seed file %s: %w", path, err)
	}

	s.AddMeetings(sd.Meetings...)
	s.AddMinutes(sd.Minutes...)
	s.AddTranscripts(sd.Transcripts...)
	s.AddActionItems(sd.ActionItems...)
	return nil
}

// AddMeetings appends meeting records.
func (s *Store) AddMeetings(records ...record.Meeting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings = append(s.meetings, records...)
}

// AddMinutes appends minutes records.
func (s *Store) AddMinutes(records ...record.Minutes) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.minutes = append(s.minutes, records...)
}

// AddTranscripts appends transcript segments.
func (s *Store) AddTranscripts(records ...record.TranscriptSegment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts = append(s.transcripts, records...)
}

// AddActionItems appends action items.
func (s *Store) AddActionItems(records ...record.ActionItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actionItems = append(s.actionItems, records...)
}

// Meetings returns a copy of the stored meeting records.
func (s *Store) Meetings(_ context.Context) ([]record.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]record.Meeting, len(s.meetings))
	copy(out, s.meetings)
	return out, nil
}

// Minutes returns a copy of the stored minutes records.
func (s *Store) Minutes(_ context.Context) ([]record.Minutes, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]record.Minutes, len(s.minutes))
	copy(out, s.minutes)
	return out, nil
}

// Transcripts returns a copy of the stored transcript segments.
func (s *Store) Transcripts(_ context.Context) ([]record.TranscriptSegment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]record.TranscriptSegment, len(s.transcripts))
	copy(out, s.transcripts)
	return out, nil
}

// ActionItems returns a copy of the stored action items.
func (s *Store) ActionItems(_ context.Context) ([]record.ActionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]record.ActionItem, len(s.actionItems))
	copy(out, s.actionItems)
	return out, nil
}

// Ping always succeeds; the store has no external dependency.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close is a no-op for the memory driver.
func (s *Store) Close() {}
