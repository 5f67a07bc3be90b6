package model

import "time"

// Config holds the client and stub server settings.
type Config struct {
	APIURL       string        `json:"api_url" env:"GUILD_API_URL"`
	HTTPTimeout  time.Duration `json:"http_timeout" env:"GUILD_HTTP_TIMEOUT"`
	LogFolder    string        `json:"log_folder" env:"GUILD_LOG_FOLDER"`
	CommandLog   string        `json:"command_log"`
	ErrorLog     string        `json:"error_log"`
	InfoLog      string        `json:"info_log"`
	HistoryFile  string        `json:"history_file"`
	UseColor     bool          `json:"use_color"`
	NoColor      bool          `json:"-" env:"GUILD_NO_COLOR"`
	MessageTTL   time.Duration `json:"message_ttl"`
	StubAddr     string        `json:"stub_addr" env:"GUILD_STUB_ADDR"`
	DatabaseDir  string        `json:"database_dir"`
	DatabaseFile string        `json:"database_file" env:"GUILD_STUB_DB"`
}
