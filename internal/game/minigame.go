package game

// Minigames run outside the engine; only their result crosses the boundary.
// A cancelled minigame produces no result and is indistinguishable from one
// that never triggered.

type MinigameRewardType string

const (
	RewardCreativity MinigameRewardType = "creativity"
	RewardTechnical  MinigameRewardType = "technical"
	RewardXP         MinigameRewardType = "xp"
)

type MinigameReward struct {
	Type  MinigameRewardType `json:"type"`
	Value int                `json:"value"`
}

type MinigameResult struct {
	Success bool             `json:"success"`
	Rewards []MinigameReward `json:"rewards"`
}

// splitRewards separates a result into point gains and an XP grant. A failed
// result grants nothing.
func splitRewards(res *MinigameResult) (creativity, technical, xp int) {
	if res == nil || !res.Success {
		return 0, 0, 0
	}
	for _, r := range res.Rewards {
		switch r.Type {
		case RewardCreativity:
			creativity += r.Value
		case RewardTechnical:
			technical += r.Value
		case RewardXP:
			xp += r.Value
		}
	}
	return creativity, technical, xp
}
