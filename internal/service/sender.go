package service

// Sender is the outbound messaging collaborator. The Telegram bot layer
// implements it; tests substitute a fake.
type Sender interface {
	SendText(chatID int64, text string) error
	SendPhoto(chatID int64, fileID, caption string) error
}

// Profile is the identity payload extracted from a Telegram update.
type Profile struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
}
