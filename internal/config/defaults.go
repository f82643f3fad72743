package config

const (
	// DefaultRootDir is the directory searched for log files
	DefaultRootDir = "."
	// DefaultExtension is the extension a log file name must contain after a dot
	DefaultExtension = "xml"
	// DefaultOutputPath is where the text report is written
	DefaultOutputPath = "./report.txt"
	// DefaultSnapshotFile is the default run snapshot file name
	DefaultSnapshotFile = "report.json"
	// DefaultSnapshotDir is the default snapshot directory
	DefaultSnapshotDir = "storage"
	// DefaultProcessors is the default number of parse workers
	DefaultProcessors = 1
	// DefaultEnvFile is the dotenv file read on startup
	DefaultEnvFile = ".env"
)

// Database defaults used by the publish command
const (
	DefaultDBHost = "127.0.0.1"
	DefaultDBPort = "3306"
	DefaultDBUser = "root"
	DefaultDBName = "tlr"
)

// DefaultPathsToIgnore are directory names skipped while scanning.
// Empty by default so every file under the root is considered.
var DefaultPathsToIgnore = []string{}
