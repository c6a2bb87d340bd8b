package engine

import "time"

// MockClock is a controllable time source for testing. Step, when
// non-zero, advances the clock on every Now call to simulate loop
// iterations taking real time
type MockClock struct {
	current time.Time
	step    time.Duration
}

// NewMockClock creates a mock clock starting at startTime
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{current: startTime}
}

// Now returns the mocked time, advancing it by the configured step
func (m *MockClock) Now() time.Time {
	now := m.current
	m.current = m.current.Add(m.step)
	return now
}

// SetStep configures the per-call advancement
func (m *MockClock) SetStep(d time.Duration) {
	m.step = d
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
