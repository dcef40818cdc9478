package mood

import "github.com/osse101/BrandishPet_Go/internal/domain"

// Rejection messages
const (
	MsgRejectFull    = "I'm too full to eat another bite!"
	MsgRejectTired   = "Too sleepy to play right now..."
	MsgRejectClean   = "I'm already squeaky clean!"
	MsgRejectHealthy = "I feel great, no medicine needed!"
)

// flavorText holds the success lines an action picks from
var flavorText = map[domain.Action][]string{
	domain.ActionFeed: {
		"Yum! That hit the spot.",
		"Nom nom nom!",
		"Delicious, thank you!",
		"My tummy is happy now.",
	},
	domain.ActionPlay: {
		"Wheee! Again, again!",
		"That was so much fun!",
		"Best. Game. Ever.",
		"Catch me if you can!",
	},
	domain.ActionSleep: {
		"Zzz...",
		"What a cozy nap.",
		"I feel so refreshed!",
	},
	domain.ActionBathe: {
		"Splish splash!",
		"Bubbles everywhere!",
		"So fresh and so clean.",
	},
	domain.ActionMedicine: {
		"Yuck... but I feel better.",
		"Bitter, but it works!",
		"Thanks for taking care of me.",
	},
	domain.ActionPet: {
		"Purr...",
		"That's the spot!",
		"I love you too!",
		"More scritches please!",
	},
}
