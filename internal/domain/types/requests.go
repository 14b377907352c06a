package types

// PaymentRequest initiates a mobile-money charge against an account. The
// telephone must carry the local trunk prefix (leading zero); the balance
// is only reflected after a later account refetch.
type PaymentRequest struct {
	Telephone     string `json:"telephone" validate:"required,numeric,trunkprefix"`
	Amount        string `json:"amount" validate:"required,numeric"`
	AccountNumber string `json:"account_number" validate:"required"`
}

// WiFiChange updates an account's WiFi SSID and passphrase.
type WiFiChange struct {
	Name      string `json:"wifi_name" validate:"required"`
	Password  string `json:"wifi_password" validate:"required,min=8"`
	AccountID int64  `json:"account_id" validate:"required"`
}
