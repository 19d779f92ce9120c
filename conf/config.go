package conf

// Glide configuration center
type Glide struct {
	Client      Client `cfg:"client"`
	Status      Status `cfg:"status"`
	Logger      Logger `cfg:"logger"`
	Compat      Compat `cfg:"compat"`
	PIDFileName string `cfg:"pid-filename; glide.pid; ; the file name to record connd PID"`
}

// Client config is the config of the binding client
type Client struct {
	ScanCount  int64 `cfg:"scan-count;10;numeric;default COUNT hint for scan steps"`
	BatchLimit int   `cfg:"batch-limit;256;numeric;buffered command count limitation per batch"`
}

// Compat config is the config of the compat harness target
type Compat struct {
	Addr     string `cfg:"addr; 127.0.0.1:6379; netaddr; address of the server to cross-check against"`
	Auth     string `cfg:"auth;;;server auth password"`
	KeySpace string `cfg:"keyspace; glide-compat; ; key prefix used by the harness"`
}

// Logger config is the config of default zap log
type Logger struct {
	Name       string `cfg:"name; glide; ; the default logger name"`
	Path       string `cfg:"path; logs/glide; ; the default log path"`
	Level      string `cfg:"level; info; ; log level(debug, info, warn, error, panic, fatal)"`
	Compress   bool   `cfg:"compress; false; boolean; true for enabling log compress"`
	TimeRotate string `cfg:"time-rotate; 0 0 0 * * *; ; log time rotate pattern(s m h D M W)"`
}

// Status config is the config of exported server
type Status struct {
	Listen string `cfg:"listen;0.0.0.0:7345;nonempty; listen address of http server"`
}
