package model

type Tier struct {
	Level          int    `json:"level"`
	Name           string `json:"name"`
	RequiredPoints int64  `json:"required_points"`
	Icon           string `json:"icon"`
	Benefits       string `json:"benefits"`
}

type TierStep struct {
	Tier     Tier `json:"tier"`
	Unlocked bool `json:"unlocked"`
	Current  bool `json:"current"`
}

type GetReferralTierRequest struct{}

type GetReferralTierResponse struct {
	Points            int64      `json:"points"`
	DirectReferrals   int64      `json:"direct_referrals"`
	IndirectReferrals int64      `json:"indirect_referrals"`
	ReferralCode      string     `json:"referral_code"`
	CurrentTier       Tier       `json:"current_tier"`
	NextTier          *Tier      `json:"next_tier"`
	Progress          float64    `json:"progress"`
	Ladder            []TierStep `json:"ladder"`
}
