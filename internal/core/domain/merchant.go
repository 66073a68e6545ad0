package domain

// MerchantConfig identifies the merchant toward the KHQR provider.
// It is loaded once at process start and never mutated; concurrent
// requests share it read-only.
type MerchantConfig struct {
	Token         string `json:"-"` // Bakong integration token, never exposed
	BankAccount   string `json:"bank_account"`
	MerchantName  string `json:"merchant_name"`
	MerchantCity  string `json:"merchant_city"`
	PhoneNumber   string `json:"phone_number"`
	TerminalLabel string `json:"terminal_label"`
	StoreLabel    string `json:"store_label"`

	// Deep-link source info, all optional.
	CallbackURL string `json:"callback_url,omitempty"`
	AppIconURL  string `json:"app_icon_url,omitempty"`
	AppName     string `json:"app_name,omitempty"`
}

// SupportsDeepLink returns true if the merchant configured a callback URL
// for deep-link generation.
func (m MerchantConfig) SupportsDeepLink() bool {
	return m.CallbackURL != ""
}
