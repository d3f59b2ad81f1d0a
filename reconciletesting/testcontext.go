package reconciletesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-reconcile/sideeffect"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    *testing.T
}

type TestConfig struct {
	// We seed the RNG from Seed. It is normal to force it to some fixed value
	// so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // defaults to NOOP
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:    t,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
	}
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Counters returns length distinct counters drawn from [base+1, base+length]
// in random order.
func (c *TestContext) Counters(length int, base uint32) []uint32 {
	counters := make([]uint32, length)
	for i, p := range c.Rand.Perm(length) {
		counters[i] = base + 1 + uint32(p)
	}
	return counters
}

// RandomWrites returns capacity writes, the first length of which are real.
// Slots are drawn from [1, slots], so smaller slot counts produce longer runs.
// Counters are distinct and start after base.
func (c *TestContext) RandomWrites(capacity, length, slots int, base uint32) []sideeffect.StorageWrite {
	if length > capacity {
		c.T.Fatalf("length %d exceeds capacity %d", length, capacity)
	}
	writes := make([]sideeffect.StorageWrite, capacity)
	for i, counter := range c.Counters(length, base) {
		slot := uint64(1 + c.Rand.Intn(slots))
		writes[i] = sideeffect.WriteFromUint64(slot, c.Rand.Uint64(), counter)
	}
	return writes
}

// RandomEffects returns capacity effects, the first length of which are real.
// Roughly one in publicEvery real effects has a zero counter; zero disables
// public effects.
func (c *TestContext) RandomEffects(capacity, length, publicEvery int, base uint32) []sideeffect.Effect {
	if length > capacity {
		c.T.Fatalf("length %d exceeds capacity %d", length, capacity)
	}
	effects := make([]sideeffect.Effect, capacity)
	for i, counter := range c.Counters(length, base) {
		if publicEvery > 0 && c.Rand.Intn(publicEvery) == 0 {
			counter = 0
		}
		// values start at 1 so that a public effect is never the empty sentinel
		effects[i] = sideeffect.EffectFromUint64(1+uint64(c.Rand.Int63()), counter)
	}
	return effects
}

// PadEffects places effects at the front of a capacity sized array.
func PadEffects(capacity int, effects ...sideeffect.Effect) []sideeffect.Effect {
	padded := make([]sideeffect.Effect, capacity)
	copy(padded, effects)
	return padded
}

// PadWrites places writes at the front of a capacity sized array.
func PadWrites(capacity int, writes ...sideeffect.StorageWrite) []sideeffect.StorageWrite {
	padded := make([]sideeffect.StorageWrite, capacity)
	copy(padded, writes)
	return padded
}

// PadUint32 places values at the front of a capacity sized array.
func PadUint32(capacity int, values ...uint32) []uint32 {
	padded := make([]uint32, capacity)
	copy(padded, values)
	return padded
}
