package constants

const (
	AppName            = "studyplan"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/studyplan/studyplan.db"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// EnvDBConnection names the environment variable holding a PostgreSQL connection string
	EnvDBConnection = "STUDYPLAN_DB_CONNECTION"

	// Day-of-week bounds (0 = Sunday, 6 = Saturday)
	MinDayOfWeek = 0
	MaxDayOfWeek = 6

	// Day-of-month bounds for monthly exclusion rules
	MinDayOfMonth = 1
	MaxDayOfMonth = 31

	// DaysPerWeek is used for biweekly cadence arithmetic
	DaysPerWeek = 7
)
