package economy

// Daily claim reward: DailyBaseReward + multiplier*DailyLevelBonus
const (
	DailyBaseReward = 50
	DailyLevelBonus = 10
)

// Error message formats
const (
	ErrMsgInvalidAmountFmt     = "amount %d: %w"
	ErrMsgInsufficientFundsFmt = "cost %d, balance %d: %w"
	ErrMsgInvalidMultiplierFmt = "level multiplier %d: %w"
	ErrMsgCreditOverflowFmt    = "credit %d on balance %d overflows: %w"
)

// Log messages
const (
	LogMsgCoinsAdded      = "Coins added"
	LogMsgCoinsSpent      = "Coins spent"
	LogMsgSpendRejected   = "Spend rejected"
	LogMsgDailyClaimed    = "Daily coins claimed"
	LogMsgDailyOnCooldown = "Daily claim on cooldown"
	LogMsgPublishFailed   = "Failed to publish wallet event"
)
