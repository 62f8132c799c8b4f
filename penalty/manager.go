package penalty

// Manager maps load excess and time warp to a penalized cost via two
// tunable multipliers. Both conversions are pure functions of their input;
// Manager holds no other state.
//
// Multipliers are read by operators during evaluation but only ever mutated
// between search epochs by the owning controller — never while an operator
// evaluation is in flight.
type Manager struct {
	capacityMultiplier int64
	timeWarpMultiplier int64
}

// New builds a Manager with the given multipliers. Multipliers are
// typically positive so that any violation is costed, but New does not
// enforce that: a zero multiplier is a legitimate way to temporarily switch
// off a penalty term, e.g. while ramping up towards a feasible solution.
func New(capacityMultiplier, timeWarpMultiplier int64) *Manager {
	return &Manager{
		capacityMultiplier: capacityMultiplier,
		timeWarpMultiplier: timeWarpMultiplier,
	}
}

// SetCapacityMultiplier updates the load-excess multiplier. Must not be
// called while an operator evaluation is in flight.
func (m *Manager) SetCapacityMultiplier(v int64) { m.capacityMultiplier = v }

// SetTimeWarpMultiplier updates the time-warp multiplier. Must not be
// called while an operator evaluation is in flight.
func (m *Manager) SetTimeWarpMultiplier(v int64) { m.timeWarpMultiplier = v }

// CapacityMultiplier returns the current load-excess multiplier.
func (m *Manager) CapacityMultiplier() int64 { return m.capacityMultiplier }

// TimeWarpMultiplier returns the current time-warp multiplier.
func (m *Manager) TimeWarpMultiplier() int64 { return m.timeWarpMultiplier }

// LoadPenalty returns max(load-capacity, 0) * capacityMultiplier.
func (m *Manager) LoadPenalty(load, capacity int64) int64 {
	excess := load - capacity
	if excess < 0 {
		excess = 0
	}

	return excess * m.capacityMultiplier
}

// TimeWarpPenalty returns warp * timeWarpMultiplier.
func (m *Manager) TimeWarpPenalty(warp int64) int64 {
	return warp * m.timeWarpMultiplier
}
