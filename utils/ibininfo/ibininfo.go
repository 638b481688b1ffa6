package ibininfo

import (
	"fmt"
	"runtime"
	"strings"
)

/*
go build -ldflags "-X 'github.com/cute-angelia/go-xrange/utils/ibininfo.Version=$(git describe --tags --always)' \
                   -X 'github.com/cute-angelia/go-xrange/utils/ibininfo.GitCommit=$(git log -1 --format=%h)' \
                   -X 'github.com/cute-angelia/go-xrange/utils/ibininfo.BuildTime=$(date '+%Y-%m-%d %H:%M:%S')'" ./cmd/xrange
*/

var (
	// 编译时未注入则为 unknown
	Version        = "unknown"
	GitCommit      = "unknown"
	BuildTime      = "unknown"
	BuildGoVersion = "unknown"
)

func init() {
	if BuildGoVersion == "unknown" {
		BuildGoVersion = runtime.Version()
	}
}

// StringifySingleLine 单行格式
func StringifySingleLine() string {
	return fmt.Sprintf("Version=%s. GitCommit=%s. BuildTime=%s. GoVersion=%s. runtime=%s/%s.",
		Version, oneLine(GitCommit), BuildTime, BuildGoVersion, runtime.GOOS, runtime.GOARCH)
}

func oneLine(s string) string {
	return strings.NewReplacer("\r\n", " |", "\n", " |").Replace(s)
}
