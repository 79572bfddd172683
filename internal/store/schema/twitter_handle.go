package schema

// TwitterHandleNameService represents the twitter_handle_name_services table - wallet to twitter handle registry
type TwitterHandleNameService struct {
	// WalletAddress is the registered wallet
	WalletAddress string `gorm:"column:wallet_address;primaryKey;type:varchar(48)"`
	// TwitterHandle is the handle registered for the wallet, without the leading "@"
	TwitterHandle string `gorm:"column:twitter_handle;not null;type:text;index:idx_twitter_handle_name_services_handle"`
	// Slot is the slot at which the registration was observed
	Slot int64 `gorm:"column:slot;not null"`
}

// TableName specifies the table name for the TwitterHandleNameService model
func (TwitterHandleNameService) TableName() string {
	return "twitter_handle_name_services"
}
