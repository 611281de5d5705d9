package model

type AccessToken struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

type WalletLoginRequest struct {
	Address string `json:"address" validate:"required,eth_addr"`
}

type WalletLoginResponse struct {
	Address string `json:"address"`
	Nonce   string `json:"nonce"`
}

type WalletVerifyRequest struct {
	Address      string `json:"address" validate:"required,eth_addr"`
	Signature    string `json:"signature" validate:"required"`
	ReferralCode string `json:"referral_code"`
}

type WalletVerifyResponse struct {
	UserID       string `json:"user_id"`
	ReferralCode string `json:"referral_code"`
	AccessToken  string `json:"access_token"`
}
