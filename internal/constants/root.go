package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "gentlegains"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/gentlegains"
	DefaultConfigPath  = "~/.config/gentlegains/gentlegains.db"
	DefaultConfigFile  = "~/.config/gentlegains/config.yaml"
	DefaultAPIBaseURL  = "http://127.0.0.1:8000"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is used when listing log rows
	DateTimeFormat = "2006-01-02 15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "gentlegains-"
	BackupFileSuffix = ".db"

	// Environment overrides
	EnvAPIURL       = "GENTLEGAINS_API_URL"
	EnvSessionID    = "GENTLEGAINS_SESSION_ID"
	EnvDatabase     = "GENTLEGAINS_DB"
	EnvDBConnection = "GENTLEGAINS_DB_CONNECTION"
	EnvDebug        = "GENTLEGAINS_DEBUG"

	// KeyringDatabase selects the keyring-stored connection string as the database
	KeyringDatabase = "keyring"

	// ChatHistoryLimit is the number of messages the backend replays on mount
	ChatHistoryLimit = 50
)

// Session States (tabs first, in display order)
const (
	StateDashboard SessionState = iota
	StateWorkouts
	StateFood
	StateChat
	StateAddWorkout
	StateAddFood
)

// Canned user-facing messages
const (
	ChatGreeting       = "嗨！我是你的 AI 健身教練 GentleCoach。今天想聊聊飲食還是運動計畫？"
	ChatHistoryError   = "無法載入對話紀錄，請稍後再試。"
	ChatReplyFailure   = "抱歉，GentleCoach 大腦暫時短路了，請稍後再試"
	AnalyzeFailure     = "分析失敗，請稍後再試。"
	AnalyzeDBWarning   = "AI 分析完成，但資料儲存失敗，紀錄未寫入資料庫。"
	MissingImageNotice = "請先上傳照片！"
	MissingNameNotice  = "請輸入食物名稱！"
)
