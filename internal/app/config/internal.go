package config

type InternalConfig struct {
	App          App             `mapstructure:"app"`
	Availability AppAvailability `mapstructure:"availability"`
	Minio        AppMinio        `mapstructure:"minio"`
	RabbitMQ     AppRabbitMQ     `mapstructure:"rabbitmq"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
}

// AppAvailability configures the availability editor.
type AppAvailability struct {
	// StrictValidation rejects bad slot indices and time values instead of ignoring them
	StrictValidation bool `mapstructure:"strict_validation"`
	// SaveLockTTLInSeconds is the save lock TTL; the lock is refreshed every half TTL while a save runs
	SaveLockTTLInSeconds int `mapstructure:"save_lock_ttl_in_seconds"`
	// SaveTimeoutInSeconds bounds a single save, never shorter than the lock TTL
	SaveTimeoutInSeconds int `mapstructure:"save_timeout_in_seconds"`
	// EditorIdleTimeoutInMinutes is how long an untouched editor session survives
	EditorIdleTimeoutInMinutes int `mapstructure:"editor_idle_timeout_in_minutes"`
	// EditorSweepCronSpec schedules the idle session sweep (e.g., "@every 5m")
	EditorSweepCronSpec string `mapstructure:"editor_sweep_cron_spec"`
}

type AppMinio struct {
	BucketName                          string `mapstructure:"bucket_name"`
	ProfilePictureMaxUploadSizeInMB     int64  `mapstructure:"profile_picture_max_upload_size_in_mb"`
	PreSignedUrlObjectExpiryTimeInHours int    `mapstructure:"pre_signed_url_object_expiry_time_in_hours"`
}

type AppRabbitMQ struct {
	AvailabilityQueue string `mapstructure:"availability_queue"`
}
