package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s"

	// Character operation error messages
	ErrMsgCreateCharacterFailed = "Failed to create character"
	ErrMsgGetCharacterFailed    = "Failed to get character"
	ErrMsgListCharactersFailed  = "Failed to list characters"
	ErrMsgDeleteCharacterFailed = "Failed to delete character"
	ErrMsgDepositFailed         = "Failed to deposit"
	ErrMsgWithdrawFailed        = "Failed to withdraw"
	ErrMsgEquipFailed           = "Failed to equip"
	ErrMsgUnequipFailed         = "Failed to unequip"

	// Work operation error messages
	ErrMsgListWorksFailed  = "Failed to list works"
	ErrMsgCreateWorkFailed = "Failed to create work"
	ErrMsgCancelWorkFailed = "Failed to cancel work"
	ErrMsgGetWorkFailed    = "Failed to get work"
	ErrMsgUpdateWorkFailed = "Failed to update work"

	// Report operation error messages
	ErrMsgListReportsFailed  = "Failed to list reports"
	ErrMsgCreateReportFailed = "Failed to create report"
	ErrMsgMarkReadFailed     = "Failed to mark report read"
	ErrMsgDeleteReportFailed = "Failed to delete report"
	ErrMsgUnreadCountFailed  = "Failed to count unread reports"

	// Mob catalog error messages
	ErrMsgGetMobFailed = "Failed to get mob"
)

// Success messages
const (
	MsgCharacterDeleted = "Character deleted"
	MsgWorkCancelled    = "Work cancelled"
	MsgReportRead       = "Report marked as read"
	MsgReportDeleted    = "Report deleted"
)
