package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "MADO_SVC_"
)

const (
	SessionCookieName = "mado_session"
)

const (
	DefaultSessionJanitorCronSpec = "@every 1m"
)
