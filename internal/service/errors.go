package service

import "errors"

// Service-level errors checked by the bot layer when choosing the
// user-facing reply.
var (
	// ErrUnauthorized is returned when a non-administrator calls an
	// admin-only operation. No state is changed.
	ErrUnauthorized = errors.New("administrator only")

	// ErrBadReplyToken is returned when a reply command does not match the
	// reply_<id> format.
	ErrBadReplyToken = errors.New("malformed reply token")

	// ErrUnknownTarget is returned when a reply targets an identity the bot
	// has never seen. Replies never create users.
	ErrUnknownTarget = errors.New("unknown reply target")

	// ErrDeliveryFailed is returned when Telegram did not accept an outbound
	// message. The durable record written before the send is kept.
	ErrDeliveryFailed = errors.New("delivery failed")
)
