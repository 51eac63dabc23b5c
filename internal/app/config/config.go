package config

import (
	"mado-service/internal/pkg/constvars"
	"mado-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                         utils.GetEnvString("APP_ENV", "development"),
			Port:                        utils.GetEnvString("APP_PORT", ":8080"),
			Version:                     utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                    utils.GetEnvString("APP_TIMEZONE", "America/Toronto"),
			AllowedOrigins:              utils.GetEnvCSV("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                 utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte:  utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
			SessionIdleTimeoutInMinutes: utils.GetEnvInt("APP_SESSION_IDLE_TIMEOUT_IN_MINUTES", 120),
			SessionJanitorCronSpec:      utils.GetEnvString("APP_SESSION_JANITOR_CRON_SPEC", constvars.DefaultSessionJanitorCronSpec),
		},
		Mado: AppMado{
			BackendBaseUrl:                  utils.GetEnvString("MADO_BACKEND_BASE_URL", "http://localhost:8000"),
			PreviewBaseUrl:                  utils.GetEnvString("MADO_PREVIEW_BASE_URL", "http://localhost:8000"+constvars.MadoObjectsPath),
			ClientTimeoutInSeconds:          utils.GetEnvInt("MADO_CLIENT_TIMEOUT_IN_SECONDS", 0),
			ApproverID:                      utils.GetEnvString("MADO_APPROVER_ID", constvars.MadoDemoApproverID),
			BackendPort:                     utils.GetEnvString("MADO_BACKEND_PORT", ":8000"),
			RecipientsFile:                  utils.GetEnvString("MADO_RECIPIENTS_FILE", "data/mado_recipients.json"),
			PreSignedUrlExpiryTimeInMinutes: utils.GetEnvInt("MADO_PRESIGNED_URL_EXPIRY_TIME_IN_MINUTES", 60),
			SendLockExpiryTimeInSeconds:     utils.GetEnvInt("MADO_SEND_LOCK_EXPIRY_TIME_IN_SECONDS", 120),
		},
		Interfax: AppInterfax{
			BaseUrl:              utils.GetEnvString("INTERFAX_BASE_URL", "https://rest.interfax.net"),
			Username:             utils.GetEnvString("INTERFAX_USERNAME", ""),
			Password:             utils.GetEnvString("INTERFAX_PASSWORD", ""),
			HTTPTimeoutInSeconds: utils.GetEnvInt("INTERFAX_HTTP_TIMEOUT_IN_SECONDS", 60),
			RequestsPerMinute:    utils.GetEnvInt("INTERFAX_REQUESTS_PER_MINUTE", 30),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "aurascribe"),
		},
		RabbitMQ: AppRabbitMQ{
			MadoEventsQueue: utils.GetEnvString("RABBITMQ_MADO_EVENTS_QUEUE", "mado_draft_events"),
		},
	}
}
