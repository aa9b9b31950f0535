// Package version 빌드 시점에 ldflags로 주입된 버전 정보와 런타임 빌드 정보를 제공합니다.
//
// 빌드 예:
//
//	go build -ldflags "-X github.com/darkkaiser/agileflow-probe/internal/pkg/version.appVersion=v1.2.0 \
//	  -X github.com/darkkaiser/agileflow-probe/internal/pkg/version.gitCommitHash=$(git rev-parse HEAD)"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

const (
	unknown = "unknown"
	none    = "none"

	// productName User-Agent 헤더 등에 사용하는 제품 식별자
	productName = "agileflow-probe"
)

// 빌드 시 ldflags로 주입되는 값
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = "" // clean 또는 dirty
	buildDate     = ""
	buildNumber   = ""
)

var current atomic.Pointer[Info]

// 테스트에서 교체할 수 있도록 변수로 둡니다.
var readBuildInfo = debug.ReadBuildInfo

func init() {
	info := Info{
		Version:     strings.TrimSpace(appVersion),
		Commit:      strings.TrimSpace(gitCommitHash),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	}

	set(resolve(info))
}

// Info 애플리케이션 빌드 정보입니다. /api/version 응답 본문으로도 사용됩니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 현재 프로세스의 빌드 정보를 반환합니다.
func Get() Info {
	if info := current.Load(); info != nil {
		return *info
	}

	return Info{
		Version:     unknown,
		Commit:      unknown,
		BuildDate:   unknown,
		BuildNumber: "0",
	}
}

func set(info Info) {
	current.Store(&info)
}

// resolve ldflags로 채워지지 않은 항목을 런타임/VCS 빌드 정보로 보완합니다.
func resolve(info Info) Info {
	info.GoVersion = runtime.Version()
	info.OS = runtime.GOOS
	info.Arch = runtime.GOARCH

	if bi, ok := readBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" || info.Commit == none {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = s.Value
				}
			case "vcs.modified":
				if s.Value == "true" {
					info.DirtyBuild = true
				}
			}
		}

		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	if info.Version == "" {
		info.Version = unknown
	}
	if info.Commit == "" || info.Commit == none {
		info.Commit = unknown
	}
	if info.BuildDate == "" {
		info.BuildDate = unknown
	}
	if info.BuildNumber == "" {
		info.BuildNumber = "0"
	}

	return info
}

// Version 애플리케이션 버전 문자열을 반환합니다.
func Version() string {
	return Get().Version
}

// UserAgent 대상 서비스로 보내는 요청의 User-Agent 값을 반환합니다. (예: agileflow-probe/v1.2.0)
func UserAgent() string {
	return productName + "/" + Get().Version
}

// ShortCommit 커밋 해시의 앞 7자리를 반환합니다.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 && i.Commit != unknown {
		return i.Commit[:7]
	}
	return i.Commit
}

// Fields 구조적 로깅용 필드 맵을 반환합니다.
func (i Info) Fields() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.ShortCommit(),
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"dirty_build":  i.DirtyBuild,
	}
}

func (i Info) String() string {
	v := i.Version
	if i.DirtyBuild {
		v += "+dirty"
	}

	return fmt.Sprintf("%s (commit: %s, build: %s, date: %s, %s %s/%s)",
		v, i.ShortCommit(), i.BuildNumber, i.BuildDate, i.GoVersion, i.OS, i.Arch)
}
