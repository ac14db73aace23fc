// meta/meta.go
package meta

// MIN_TURNS and MAX_TURNS bound the attack turns a battle runs for.
const MIN_TURNS = 1
const MAX_TURNS = 10

// MIN_SPIES and MAX_SPIES bound the spies sent on one mission.
const MIN_SPIES = 1
const MAX_SPIES = 10

// COUNTER_RATIO_FLOOR is the lowest ratio used when computing counter-damage.
const COUNTER_RATIO_FLOOR = 0.3

// UNIT_FACTOR_MIN and UNIT_FACTOR_MAX clamp the unit-count factor.
const UNIT_FACTOR_MIN = 0.5
const UNIT_FACTOR_MAX = 4.0

// EXPERIENCE_CUTOFF zeroes experience below this strength ratio.
const EXPERIENCE_CUTOFF = 0.33

// ASSASSINATION_KILLS_PER_SPY caps the casualty budget of an assassination.
const ASSASSINATION_KILLS_PER_SPY = 2

// INTEL_PER_SPY is the intel percentage each surviving spy contributes.
const INTEL_PER_SPY = 10
