package config

type InternalConfig struct {
	App      App
	Mado     AppMado
	Interfax AppInterfax
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                         string
	Port                        string
	Version                     string
	Timezone                    string
	AllowedOrigins              []string
	MaxRequests                 int
	ShutdownTimeoutInSeconds    int
	RequestBodyLimitInMegabyte  int
	SessionIdleTimeoutInMinutes int
	// SessionJanitorCronSpec schedules the idle-session sweep (e.g. "@every 1m")
	SessionJanitorCronSpec      string
}

// AppMado configures both the drafts front-end and the MADO backend.
type AppMado struct {
	// BackendBaseUrl is where the front-end sends generate and send requests.
	BackendBaseUrl string
	// PreviewBaseUrl is joined with a draft's storage key when the backend returns no preview_url.
	// Empty disables that fallback.
	PreviewBaseUrl string
	// ClientTimeoutInSeconds bounds each backend call; 0 means no timeout.
	ClientTimeoutInSeconds int
	// ApproverID is sent as approve_by on every send.
	ApproverID string

	BackendPort                     string
	RecipientsFile                  string
	PreSignedUrlExpiryTimeInMinutes int
	SendLockExpiryTimeInSeconds     int
}

type AppInterfax struct {
	BaseUrl              string
	Username             string
	Password             string
	HTTPTimeoutInSeconds int
	RequestsPerMinute    int
}

type AppMinio struct {
	BucketName string
}

type AppRabbitMQ struct {
	MadoEventsQueue string
}
