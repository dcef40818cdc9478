package progression

// Stage thresholds: the highest threshold not exceeding XP decides the stage
const (
	ThresholdBaby  = 0
	ThresholdKid   = 500
	ThresholdTeen  = 1500
	ThresholdAdult = 5000
	ThresholdOld   = 10000
)

// XPCoinDivisor converts awarded XP into bonus coins: floor(xp / divisor)
const XPCoinDivisor = 10

// Log messages
const (
	LogMsgXPAwarded       = "Awarded XP"
	LogMsgPetEvolved      = "Pet evolved"
	LogMsgPremiumUnlocked = "Premium feature unlocked"
	LogMsgPublishFailed   = "Failed to publish progression event"
	LogMsgStageRegression = "Stored stage ahead of XP, keeping stored stage"
	LogMsgBonusSkipped    = "XP bonus coins skipped, wallet is full"
)
