package domain

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles  StrategyTier = iota // naked / hidden singles
	StrategyPairs                        // naked/hidden pairs
	StrategyAdvanced                     // pointing/claiming, triples, etc.
)
