package preference

// Record is the per-user settings item, keyed by UserID.
type Record struct {
	UserID               string `json:"userId" dynamodbav:"userId"`
	NotificationsEnabled bool   `json:"notificationsEnabled" dynamodbav:"notificationsEnabled"`
}
