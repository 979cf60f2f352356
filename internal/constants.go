package internal

const (
	COOKIE_ACCESS_TOKEN_NAME = "campusloans_access_token"
	COOKIE_REDIRECT_NAME     = "campusloans_redirect_to"
	COOKIE_DRAFT_NAME        = "campusloans_loan_draft"
)
